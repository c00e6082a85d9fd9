package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/models"
)

func GetFeeHeads(db *sql.DB) ([]*models.FeeHead, error) {
	rows, err := db.Query(`SELECT id, name, COALESCE(description,''), created_at
		FROM fee_heads ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var heads []*models.FeeHead
	for rows.Next() {
		h := &models.FeeHead{}
		if err := rows.Scan(&h.ID, &h.Name, &h.Description, &h.CreatedAt); err != nil {
			return nil, err
		}
		heads = append(heads, h)
	}
	return heads, rows.Err()
}

func CreateFeeHead(db *sql.DB, h *models.FeeHead) error {
	return db.QueryRow(`INSERT INTO fee_heads (name, description) VALUES ($1, $2)
		RETURNING id, created_at`, h.Name, h.Description).Scan(&h.ID, &h.CreatedAt)
}

func UpdateFeeHead(db *sql.DB, h *models.FeeHead) error {
	res, err := db.Exec(`UPDATE fee_heads SET name=$2, description=$3 WHERE id=$1`,
		h.ID, h.Name, h.Description)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

func DeleteFeeHead(db *sql.DB, id int) error {
	res, err := db.Exec(`DELETE FROM fee_heads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

func GetFeeTypes(db *sql.DB) ([]*models.FeeType, error) {
	rows, err := db.Query(`SELECT id, name FROM fee_types ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*models.FeeType
	for rows.Next() {
		t := &models.FeeType{}
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func CreateFeeType(db *sql.DB, t *models.FeeType) error {
	return db.QueryRow(`INSERT INTO fee_types (name) VALUES ($1) RETURNING id`,
		t.Name).Scan(&t.ID)
}

func DeleteFeeType(db *sql.DB, id int) error {
	res, err := db.Exec(`DELETE FROM fee_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

const feeMasterCols = `m.id, m.head_id, m.type_id, m.amount, m.start_date,
	m.end_date, m.created_at, h.name, t.name`

func scanFeeMaster(r rowScanner) (*models.FeeMaster, error) {
	m := &models.FeeMaster{}
	err := r.Scan(&m.ID, &m.HeadID, &m.TypeID, &m.Amount, &m.StartDate,
		&m.EndDate, &m.CreatedAt, &m.HeadName, &m.TypeName)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func GetFeeMasters(db *sql.DB) ([]*models.FeeMaster, error) {
	rows, err := db.Query(`SELECT ` + feeMasterCols + ` FROM fee_master m
		JOIN fee_heads h ON h.id = m.head_id
		JOIN fee_types t ON t.id = m.type_id
		ORDER BY h.name ASC, t.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var masters []*models.FeeMaster
	for rows.Next() {
		m, err := scanFeeMaster(rows)
		if err != nil {
			return nil, err
		}
		masters = append(masters, m)
	}
	return masters, rows.Err()
}

func GetFeeMasterByID(db *sql.DB, id int) (*models.FeeMaster, error) {
	row := db.QueryRow(`SELECT `+feeMasterCols+` FROM fee_master m
		JOIN fee_heads h ON h.id = m.head_id
		JOIN fee_types t ON t.id = m.type_id
		WHERE m.id = $1`, id)
	return scanFeeMaster(row)
}

func CreateFeeMaster(db *sql.DB, m *models.FeeMaster) error {
	return db.QueryRow(`INSERT INTO fee_master (head_id, type_id, amount, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		m.HeadID, m.TypeID, m.Amount, m.StartDate, m.EndDate).
		Scan(&m.ID, &m.CreatedAt)
}

func UpdateFeeMaster(db *sql.DB, m *models.FeeMaster) error {
	res, err := db.Exec(`UPDATE fee_master SET head_id=$2, type_id=$3, amount=$4,
		start_date=$5, end_date=$6 WHERE id=$1`,
		m.ID, m.HeadID, m.TypeID, m.Amount, m.StartDate, m.EndDate)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

func DeleteFeeMaster(db *sql.DB, id int) error {
	res, err := db.Exec(`DELETE FROM fee_master WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

// AssignFee creates one obligation, copying the amount from the fee master
// entry at assignment time so later master edits never change it.
func AssignFee(db *sql.DB, studentID string, masterID int, dueDate *time.Time) (int, error) {
	var id int
	err := db.QueryRow(`INSERT INTO assigned_fees (student_id, fee_master_id, due_date, amount, status)
		SELECT $1, m.id, $3::date, m.amount, $4 FROM fee_master m WHERE m.id = $2
		RETURNING id`,
		studentID, masterID, dueDate, models.FeeNotPaid).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("fee master %d not found", masterID)
	}
	return id, err
}

// BulkAssignFees assigns the same fee master entry to every listed student
// in one transaction. Like AssignFee, it always creates a new obligation:
// a student billed twice for the same fee owes it twice.
func BulkAssignFees(db *sql.DB, studentIDs []string, masterID int, dueDate *time.Time) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var amount float64
	if err := tx.QueryRow(`SELECT amount FROM fee_master WHERE id = $1`, masterID).Scan(&amount); err != nil {
		if err == sql.ErrNoRows {
			return 0, fmt.Errorf("fee master %d not found", masterID)
		}
		return 0, err
	}

	created := 0
	for _, sid := range studentIDs {
		_, err := tx.Exec(`INSERT INTO assigned_fees (student_id, fee_master_id, due_date, amount, status)
			VALUES ($1, $2, $3::date, $4, $5)`,
			sid, masterID, dueDate, amount, models.FeeNotPaid)
		if err != nil {
			return 0, err
		}
		created++
	}

	return created, tx.Commit()
}

// AssignedFeeFilters narrows assigned-fee listings.
type AssignedFeeFilters struct {
	StudentID string
	Status    string
	HeadID    int
	Course    string
	Batch     string
}

const assignedFeeCols = `af.id, af.student_id, af.fee_master_id, af.assigned_on,
	af.due_date, af.amount, af.status, COALESCE(s.name, ''), h.name, t.name,
	COALESCE((SELECT SUM(p.amount_paid) FROM fee_payments p WHERE p.assigned_fee_id = af.id), 0)`

func scanAssignedFee(r rowScanner) (*models.AssignedFee, error) {
	af := &models.AssignedFee{}
	err := r.Scan(&af.ID, &af.StudentID, &af.FeeMasterID, &af.AssignedOn,
		&af.DueDate, &af.Amount, &af.Status, &af.StudentName,
		&af.HeadName, &af.TypeName, &af.PaidSum)
	if err != nil {
		return nil, err
	}
	return af, nil
}

func GetAssignedFees(db *sql.DB, f AssignedFeeFilters) ([]*models.AssignedFee, error) {
	// LEFT JOIN: obligations of withdrawn students stay listable after
	// their row moves to the dropouts table.
	query := `SELECT ` + assignedFeeCols + ` FROM assigned_fees af
		LEFT JOIN students s ON s.id = af.student_id
		JOIN fee_master m ON m.id = af.fee_master_id
		JOIN fee_heads h ON h.id = m.head_id
		JOIN fee_types t ON t.id = m.type_id
		WHERE 1=1`
	var args []interface{}

	if f.StudentID != "" {
		args = append(args, f.StudentID)
		query += fmt.Sprintf(" AND af.student_id = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND af.status = $%d", len(args))
	}
	if f.HeadID > 0 {
		args = append(args, f.HeadID)
		query += fmt.Sprintf(" AND m.head_id = $%d", len(args))
	}
	if f.Course != "" {
		args = append(args, f.Course)
		query += fmt.Sprintf(" AND s.course = $%d", len(args))
	}
	if f.Batch != "" {
		args = append(args, f.Batch)
		query += fmt.Sprintf(" AND s.batch = $%d", len(args))
	}

	query += ` ORDER BY s.name ASC, af.id ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []*models.AssignedFee
	for rows.Next() {
		af, err := scanAssignedFee(rows)
		if err != nil {
			return nil, err
		}
		fees = append(fees, af)
	}
	return fees, rows.Err()
}

func GetAssignedFeeByID(db *sql.DB, id int) (*models.AssignedFee, error) {
	row := db.QueryRow(`SELECT `+assignedFeeCols+` FROM assigned_fees af
		LEFT JOIN students s ON s.id = af.student_id
		JOIN fee_master m ON m.id = af.fee_master_id
		JOIN fee_heads h ON h.id = m.head_id
		JOIN fee_types t ON t.id = m.type_id
		WHERE af.id = $1`, id)
	return scanAssignedFee(row)
}

func DeleteAssignedFee(db *sql.DB, id int) error {
	res, err := db.Exec(`DELETE FROM assigned_fees WHERE id = $1 AND NOT EXISTS
		(SELECT 1 FROM fee_payments WHERE assigned_fee_id = $1)`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

// CollectPayment records a payment against an assigned fee: payment row,
// receipt row, and status recompute in one transaction. The assigned fee is
// locked first so two simultaneous payments cannot both read a stale paid
// sum.
func CollectPayment(db *sql.DB, p *models.FeePayment, receiptNo string) (*models.FeeReceipt, models.FeeStatus, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, "", err
	}
	defer tx.Rollback()

	var assigned float64
	err = tx.QueryRow(`SELECT amount FROM assigned_fees WHERE id = $1 FOR UPDATE`,
		p.AssignedFeeID).Scan(&assigned)
	if err != nil {
		return nil, "", err
	}

	if p.PaidOn.IsZero() {
		p.PaidOn = time.Now()
	}
	err = tx.QueryRow(`INSERT INTO fee_payments
		(assigned_fee_id, amount_paid, paid_on, payment_mode, account_id,
		 notes, metadata, attachment_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at`,
		p.AssignedFeeID, p.AmountPaid, p.PaidOn, p.PaymentMode, p.AccountID,
		p.Notes, p.Metadata, p.AttachmentURL).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, "", err
	}

	receipt := &models.FeeReceipt{PaymentID: p.ID, ReceiptNo: receiptNo}
	err = tx.QueryRow(`INSERT INTO fee_receipts (payment_id, receipt_no)
		VALUES ($1, $2) RETURNING id, created_at`,
		receipt.PaymentID, receipt.ReceiptNo).Scan(&receipt.ID, &receipt.CreatedAt)
	if err != nil {
		return nil, "", err
	}

	var paidSum float64
	err = tx.QueryRow(`SELECT COALESCE(SUM(amount_paid), 0) FROM fee_payments
		WHERE assigned_fee_id = $1`, p.AssignedFeeID).Scan(&paidSum)
	if err != nil {
		return nil, "", err
	}

	status := models.DeriveFeeStatus(assigned, paidSum)
	if _, err := tx.Exec(`UPDATE assigned_fees SET status = $2 WHERE id = $1`,
		p.AssignedFeeID, status); err != nil {
		return nil, "", err
	}

	return receipt, status, tx.Commit()
}

// DeletePayment removes a payment and its receipt and recomputes the fee
// status under the same lock discipline as collection.
func DeletePayment(db *sql.DB, paymentID int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var assignedFeeID int
	err = tx.QueryRow(`SELECT assigned_fee_id FROM fee_payments WHERE id = $1`,
		paymentID).Scan(&assignedFeeID)
	if err != nil {
		return err
	}

	var assigned float64
	err = tx.QueryRow(`SELECT amount FROM assigned_fees WHERE id = $1 FOR UPDATE`,
		assignedFeeID).Scan(&assigned)
	if err != nil {
		return err
	}

	// Receipt rows cascade on payment delete.
	if _, err := tx.Exec(`DELETE FROM fee_payments WHERE id = $1`, paymentID); err != nil {
		return err
	}

	var paidSum float64
	err = tx.QueryRow(`SELECT COALESCE(SUM(amount_paid), 0) FROM fee_payments
		WHERE assigned_fee_id = $1`, assignedFeeID).Scan(&paidSum)
	if err != nil {
		return err
	}

	status := models.DeriveFeeStatus(assigned, paidSum)
	if _, err := tx.Exec(`UPDATE assigned_fees SET status = $2 WHERE id = $1`,
		assignedFeeID, status); err != nil {
		return err
	}

	return tx.Commit()
}

// PaymentFilters narrows payment listings.
type PaymentFilters struct {
	AssignedFeeID int
	StudentID     string
	From          *time.Time
	To            *time.Time
}

func GetPayments(db *sql.DB, f PaymentFilters) ([]*models.FeePayment, error) {
	query := `SELECT p.id, p.assigned_fee_id, p.amount_paid, p.paid_on,
		COALESCE(p.payment_mode,''), p.account_id, COALESCE(p.notes,''),
		p.metadata, p.attachment_url, p.created_at,
		af.student_id, h.name, af.amount
		FROM fee_payments p
		JOIN assigned_fees af ON af.id = p.assigned_fee_id
		JOIN fee_master m ON m.id = af.fee_master_id
		JOIN fee_heads h ON h.id = m.head_id
		WHERE 1=1`
	var args []interface{}

	if f.AssignedFeeID > 0 {
		args = append(args, f.AssignedFeeID)
		query += fmt.Sprintf(" AND p.assigned_fee_id = $%d", len(args))
	}
	if f.StudentID != "" {
		args = append(args, f.StudentID)
		query += fmt.Sprintf(" AND af.student_id = $%d", len(args))
	}
	if f.From != nil {
		args = append(args, *f.From)
		query += fmt.Sprintf(" AND p.paid_on >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		query += fmt.Sprintf(" AND p.paid_on <= $%d", len(args))
	}

	query += ` ORDER BY p.paid_on DESC, p.id DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.FeePayment
	for rows.Next() {
		p := &models.FeePayment{}
		err := rows.Scan(&p.ID, &p.AssignedFeeID, &p.AmountPaid, &p.PaidOn,
			&p.PaymentMode, &p.AccountID, &p.Notes,
			&p.Metadata, &p.AttachmentURL, &p.CreatedAt,
			&p.StudentID, &p.HeadName, &p.Assigned)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func GetReceiptByPaymentID(db *sql.DB, paymentID int) (*models.FeeReceipt, error) {
	r := &models.FeeReceipt{}
	err := db.QueryRow(`SELECT id, payment_id, receipt_no, created_at
		FROM fee_receipts WHERE payment_id = $1`, paymentID).
		Scan(&r.ID, &r.PaymentID, &r.ReceiptNo, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// HeadWiseSummary is one row of the head-wise collection report.
type HeadWiseSummary struct {
	HeadID    int     `json:"head_id"`
	HeadName  string  `json:"head_name"`
	Assigned  float64 `json:"assigned_total"`
	Collected float64 `json:"collected_total"`
	Pending   float64 `json:"pending_total"`
}

// GetHeadWiseSummary aggregates assigned and collected amounts per fee head.
func GetHeadWiseSummary(db *sql.DB) ([]*HeadWiseSummary, error) {
	rows, err := db.Query(`SELECT h.id, h.name,
		COALESCE(SUM(af.amount), 0),
		COALESCE((SELECT SUM(p.amount_paid) FROM fee_payments p
			JOIN assigned_fees af2 ON af2.id = p.assigned_fee_id
			JOIN fee_master m2 ON m2.id = af2.fee_master_id
			WHERE m2.head_id = h.id), 0)
		FROM fee_heads h
		LEFT JOIN fee_master m ON m.head_id = h.id
		LEFT JOIN assigned_fees af ON af.fee_master_id = m.id
		GROUP BY h.id, h.name
		ORDER BY h.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*HeadWiseSummary
	for rows.Next() {
		s := &HeadWiseSummary{}
		if err := rows.Scan(&s.HeadID, &s.HeadName, &s.Assigned, &s.Collected); err != nil {
			return nil, err
		}
		s.Pending = s.Assigned - s.Collected
		out = append(out, s)
	}
	return out, rows.Err()
}
