package fees

import (
	"database/sql"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/config"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/database"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/models"
)

func GetFeeHeadsAPI(c *fiber.Ctx, db *sql.DB) error {
	heads, err := database.GetFeeHeads(db)
	if err != nil {
		return fiber.NewError(500, "Failed to load fee heads")
	}
	return c.JSON(fiber.Map{"success": true, "fee_heads": heads})
}

func CreateFeeHeadAPI(c *fiber.Ctx, db *sql.DB) error {
	h := &models.FeeHead{}
	if err := c.BodyParser(h); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if strings.TrimSpace(h.Name) == "" {
		return fiber.NewError(400, "Fee head name is required")
	}
	if err := database.CreateFeeHead(db, h); err != nil {
		return fiber.NewError(500, "Failed to create fee head")
	}
	return c.JSON(fiber.Map{"success": true, "fee_head": h})
}

func UpdateFeeHeadAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid fee head id")
	}
	h := &models.FeeHead{}
	if err := c.BodyParser(h); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	h.ID = id
	if strings.TrimSpace(h.Name) == "" {
		return fiber.NewError(400, "Fee head name is required")
	}
	if err := database.UpdateFeeHead(db, h); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Fee head not found")
		}
		return fiber.NewError(500, "Failed to update fee head")
	}
	return c.JSON(fiber.Map{"success": true, "fee_head": h})
}

func DeleteFeeHeadAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid fee head id")
	}
	if err := database.DeleteFeeHead(db, id); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Fee head not found")
		}
		return fiber.NewError(500, "Failed to delete fee head")
	}
	return c.JSON(fiber.Map{"success": true})
}

func GetFeeTypesAPI(c *fiber.Ctx, db *sql.DB) error {
	types, err := database.GetFeeTypes(db)
	if err != nil {
		return fiber.NewError(500, "Failed to load fee types")
	}
	return c.JSON(fiber.Map{"success": true, "fee_types": types})
}

func CreateFeeTypeAPI(c *fiber.Ctx, db *sql.DB) error {
	t := &models.FeeType{}
	if err := c.BodyParser(t); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fiber.NewError(400, "Fee type name is required")
	}
	if err := database.CreateFeeType(db, t); err != nil {
		return fiber.NewError(500, "Failed to create fee type")
	}
	return c.JSON(fiber.Map{"success": true, "fee_type": t})
}

func DeleteFeeTypeAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid fee type id")
	}
	if err := database.DeleteFeeType(db, id); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Fee type not found")
		}
		return fiber.NewError(500, "Failed to delete fee type")
	}
	return c.JSON(fiber.Map{"success": true})
}

func GetFeeMastersAPI(c *fiber.Ctx, db *sql.DB) error {
	masters, err := database.GetFeeMasters(db)
	if err != nil {
		return fiber.NewError(500, "Failed to load fee master")
	}
	return c.JSON(fiber.Map{"success": true, "fee_master": masters})
}

func CreateFeeMasterAPI(c *fiber.Ctx, db *sql.DB) error {
	m := &models.FeeMaster{}
	if err := c.BodyParser(m); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if m.HeadID <= 0 || m.TypeID <= 0 {
		return fiber.NewError(400, "Fee head and fee type are required")
	}
	if m.Amount <= 0 {
		return fiber.NewError(400, "Amount must be greater than zero")
	}
	if err := database.CreateFeeMaster(db, m); err != nil {
		return fiber.NewError(500, "Failed to create fee master entry")
	}
	return c.JSON(fiber.Map{"success": true, "fee_master": m})
}

func UpdateFeeMasterAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid fee master id")
	}
	m := &models.FeeMaster{}
	if err := c.BodyParser(m); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	m.ID = id
	if m.Amount <= 0 {
		return fiber.NewError(400, "Amount must be greater than zero")
	}
	if err := database.UpdateFeeMaster(db, m); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Fee master entry not found")
		}
		return fiber.NewError(500, "Failed to update fee master entry")
	}
	return c.JSON(fiber.Map{"success": true, "fee_master": m})
}

func DeleteFeeMasterAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid fee master id")
	}
	if err := database.DeleteFeeMaster(db, id); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Fee master entry not found")
		}
		return fiber.NewError(500, "Failed to delete fee master entry")
	}
	return c.JSON(fiber.Map{"success": true})
}

// AssignFeeAPI creates one obligation for one student.
func AssignFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	type assignRequest struct {
		StudentID   string `json:"student_id" form:"student_id"`
		FeeMasterID int    `json:"fee_master_id" form:"fee_master_id"`
		DueDate     string `json:"due_date" form:"due_date"`
	}
	var req assignRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if req.StudentID == "" || req.FeeMasterID <= 0 {
		return fiber.NewError(400, "Student and fee master entry are required")
	}

	if _, err := database.GetStudentByID(db, req.StudentID); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Student not found")
		}
		return fiber.NewError(500, "Database error")
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		d, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return fiber.NewError(400, "Invalid due date, expected YYYY-MM-DD")
		}
		dueDate = &d
	}

	id, err := database.AssignFee(db, req.StudentID, req.FeeMasterID, dueDate)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return fiber.NewError(404, "Fee master entry not found")
		}
		return fiber.NewError(500, "Failed to assign fee")
	}

	return c.JSON(fiber.Map{"success": true, "assigned_fee_id": id})
}

// BulkAssignFeesAPI assigns one fee master entry to every student matching
// the structural filters, or to an explicit id list.
func BulkAssignFeesAPI(c *fiber.Ctx, db *sql.DB) error {
	type bulkRequest struct {
		StudentIDs  []string `json:"student_ids"`
		Course      string   `json:"course"`
		Branch      string   `json:"branch"`
		Department  string   `json:"department"`
		Batch       string   `json:"batch"`
		Session     string   `json:"session"`
		FeeMasterID int      `json:"fee_master_id"`
		DueDate     string   `json:"due_date"`
	}
	var req bulkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if req.FeeMasterID <= 0 {
		return fiber.NewError(400, "Fee master entry is required")
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		d, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return fiber.NewError(400, "Invalid due date, expected YYYY-MM-DD")
		}
		dueDate = &d
	}

	ids := req.StudentIDs
	if len(ids) == 0 {
		if req.Course == "" && req.Branch == "" && req.Department == "" &&
			req.Batch == "" && req.Session == "" {
			return fiber.NewError(400, "Provide student ids or at least one filter")
		}
		students, err := database.GetStudents(db, database.StudentFilters{
			Course:     req.Course,
			Branch:     req.Branch,
			Department: req.Department,
			Batch:      req.Batch,
			Session:    req.Session,
		})
		if err != nil {
			return fiber.NewError(500, "Failed to load students")
		}
		for _, s := range students {
			ids = append(ids, s.ID)
		}
	}
	if len(ids) == 0 {
		return fiber.NewError(404, "No students match the filters")
	}

	created, err := database.BulkAssignFees(db, ids, req.FeeMasterID, dueDate)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return fiber.NewError(404, "Fee master entry not found")
		}
		return fiber.NewError(500, "Failed to assign fees")
	}

	return c.JSON(fiber.Map{"success": true, "assigned": created, "matched": len(ids)})
}

func GetAssignedFeesAPI(c *fiber.Ctx, db *sql.DB) error {
	f := database.AssignedFeeFilters{
		StudentID: c.Query("student_id"),
		Status:    c.Query("status"),
		HeadID:    c.QueryInt("head_id"),
		Course:    c.Query("course"),
		Batch:     c.Query("batch"),
	}
	fees, err := database.GetAssignedFees(db, f)
	if err != nil {
		return fiber.NewError(500, "Failed to load assigned fees")
	}
	return c.JSON(fiber.Map{"success": true, "assigned_fees": fees})
}

func DeleteAssignedFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid assigned fee id")
	}
	if err := database.DeleteAssignedFee(db, id); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(400, "Assigned fee not found or already has payments")
		}
		return fiber.NewError(500, "Failed to delete assigned fee")
	}
	return c.JSON(fiber.Map{"success": true})
}

// CollectPaymentAPI records a payment against an assigned fee. The payment,
// its receipt and the status recompute commit together; the finance mirror
// entry afterwards is best-effort and its failure only logged.
func CollectPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	type collectRequest struct {
		AssignedFeeID int     `json:"assigned_fee_id" form:"assigned_fee_id"`
		AssignedID    int     `json:"assigned_id" form:"assigned_id"`
		StudentID     string  `json:"student_id" form:"student_id"`
		Amount        float64 `json:"amount" form:"amount"`
		PaymentMode   string  `json:"payment_mode" form:"payment_mode"`
		AccountID     int     `json:"account_id" form:"account_id"`
		PaidOn        string  `json:"paid_on" form:"paid_on"`
		Notes         string  `json:"notes" form:"notes"`
		Metadata      string  `json:"metadata" form:"metadata"`
	}
	var req collectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	// Older clients send assigned_id.
	if req.AssignedFeeID == 0 {
		req.AssignedFeeID = req.AssignedID
	}
	if req.AssignedFeeID <= 0 {
		return fiber.NewError(400, "Assigned fee is required")
	}
	if req.Amount <= 0 {
		return fiber.NewError(400, "Amount must be greater than zero")
	}
	if req.PaymentMode == "" {
		return fiber.NewError(400, "Payment mode is required")
	}
	if req.AccountID <= 0 {
		return fiber.NewError(400, "Destination account is required")
	}

	assignedFee, err := database.GetAssignedFeeByID(db, req.AssignedFeeID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Assigned fee not found")
		}
		return fiber.NewError(500, "Database error")
	}
	if req.StudentID != "" && req.StudentID != assignedFee.StudentID {
		return fiber.NewError(400, "Assigned fee does not belong to this student")
	}

	account, err := database.GetAccountByID(db, req.AccountID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Account not found")
		}
		return fiber.NewError(500, "Database error")
	}

	paidOn := time.Now()
	if req.PaidOn != "" {
		paidOn, err = time.Parse("2006-01-02", req.PaidOn)
		if err != nil {
			return fiber.NewError(400, "Invalid paid_on date, expected YYYY-MM-DD")
		}
	}

	var attachmentURL *string
	if file, ferr := c.FormFile("attachment"); ferr == nil && file != nil {
		name := uuid.New().String() + filepath.Ext(file.Filename)
		if err := c.SaveFile(file, filepath.Join(config.AppConfig.UploadDirFinance, name)); err != nil {
			return fiber.NewError(500, "Failed to store attachment")
		}
		attachmentURL = &name
	}

	payment := &models.FeePayment{
		AssignedFeeID: req.AssignedFeeID,
		AmountPaid:    req.Amount,
		PaidOn:        paidOn,
		PaymentMode:   req.PaymentMode,
		AccountID:     &account.ID,
		Notes:         req.Notes,
		AttachmentURL: attachmentURL,
	}
	if req.Metadata != "" {
		payment.Metadata = &req.Metadata
	}

	receipt, status, err := database.CollectPayment(db, payment, GenerateReceiptNumber())
	if err != nil {
		return fiber.NewError(500, "Failed to record payment")
	}

	// Mirror the collection into the finance ledger. A failure here must
	// not unwind the committed payment.
	if err := recordCollectionMirror(db, account, req.Amount, receipt.ReceiptNo,
		assignedFee.StudentID, assignedFee.HeadName, paidOn); err != nil {
		log.Printf("Finance mirror insert failed for payment %d: %v", payment.ID, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"payment_id": payment.ID,
		"receipt_id": receipt.ID,
		"receipt_no": receipt.ReceiptNo,
		"status":     status,
		"attachment": attachmentURL,
	})
}

// collectionCategory is the income category every mirrored fee payment is
// filed under.
const collectionCategory = "Fee Collection"

// recordCollectionMirror writes a fee payment's INCOME counterpart into the
// finance ledger, registering the category first so it shows up in category
// listings like any manually created entry.
func recordCollectionMirror(db *sql.DB, account *models.Account, amount float64,
	receiptNo, studentID, headName string, paidOn time.Time) error {
	if _, err := database.GetOrCreateCategory(db, collectionCategory, models.IncomeCategory); err != nil {
		return err
	}
	mirror := &models.FinanceTransaction{
		AccountID: account.ID,
		Mode:      models.TransactionMode(account.AccountType),
		Type:      models.TxIncome,
		Amount:    amount,
		Category:  collectionCategory,
		Description: fmt.Sprintf("Fee payment %s for student %s (%s)",
			receiptNo, studentID, headName),
		TxDate: paidOn,
	}
	return database.CreateTransaction(db, mirror)
}

func GetPaymentsAPI(c *fiber.Ctx, db *sql.DB) error {
	f := database.PaymentFilters{
		AssignedFeeID: c.QueryInt("assigned_fee_id"),
		StudentID:     c.Query("student_id"),
	}
	if s := c.Query("from_date"); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return fiber.NewError(400, "Invalid from_date, expected YYYY-MM-DD")
		}
		f.From = &d
	}
	if s := c.Query("to_date"); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return fiber.NewError(400, "Invalid to_date, expected YYYY-MM-DD")
		}
		f.To = &d
	}

	payments, err := database.GetPayments(db, f)
	if err != nil {
		return fiber.NewError(500, "Failed to load payments")
	}
	return c.JSON(fiber.Map{"success": true, "payments": payments})
}

// DeletePaymentAPI removes a payment and its receipt; the fee status is
// recomputed from the remaining payments.
func DeletePaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid payment id")
	}
	if err := database.DeletePayment(db, id); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Payment not found")
		}
		return fiber.NewError(500, "Failed to delete payment")
	}
	return c.JSON(fiber.Map{"success": true})
}

func HeadWiseSummaryAPI(c *fiber.Ctx, db *sql.DB) error {
	summary, err := database.GetHeadWiseSummary(db)
	if err != nil {
		return fiber.NewError(500, "Failed to build head-wise summary")
	}
	return c.JSON(fiber.Map{"success": true, "summary": summary})
}
