package finance

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/database"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/models"
)

// GetAccountsAPI returns all accounts with their derived balances.
func GetAccountsAPI(c *fiber.Ctx, db *sql.DB) error {
	accounts, err := database.GetAccounts(db)
	if err != nil {
		return fiber.NewError(500, "Failed to load accounts")
	}
	balances, err := database.GetAccountBalances(db)
	if err != nil {
		return fiber.NewError(500, "Failed to compute balances")
	}

	balanceByID := make(map[int]float64, len(balances))
	for _, b := range balances {
		balanceByID[b.AccountID] = b.Balance
	}

	type accountWithBalance struct {
		*models.Account
		CurrentBalance float64 `json:"current_balance"`
	}
	out := make([]accountWithBalance, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, accountWithBalance{Account: a, CurrentBalance: balanceByID[a.ID]})
	}

	return c.JSON(fiber.Map{"success": true, "accounts": out})
}

func CreateAccountAPI(c *fiber.Ctx, db *sql.DB) error {
	a := &models.Account{}
	if err := c.BodyParser(a); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if a.AccountName == "" {
		return fiber.NewError(400, "Account name is required")
	}
	if a.AccountType != models.AccountCash && a.AccountType != models.AccountBank {
		return fiber.NewError(400, "Account type must be CASH or BANK")
	}
	if a.AccountType == models.AccountCash {
		if _, err := database.GetCashAccount(db); err == nil {
			return fiber.NewError(400, "A cash account already exists")
		} else if err != sql.ErrNoRows {
			return fiber.NewError(500, "Database error")
		}
	}

	if err := database.CreateAccount(db, a); err != nil {
		return fiber.NewError(500, "Failed to create account")
	}
	return c.JSON(fiber.Map{"success": true, "account": a})
}

func UpdateAccountAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid account id")
	}

	a := &models.Account{}
	if err := c.BodyParser(a); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	a.ID = id
	if a.AccountName == "" {
		return fiber.NewError(400, "Account name is required")
	}

	if err := database.UpdateAccount(db, a); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Account not found")
		}
		return fiber.NewError(500, "Failed to update account")
	}
	return c.JSON(fiber.Map{"success": true, "account": a})
}

func DeleteAccountAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid account id")
	}
	if err := database.DeleteAccount(db, id); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Account not found")
		}
		return fiber.NewError(500, "Failed to delete account")
	}
	return c.JSON(fiber.Map{"success": true})
}

// transactionRequest is the shared payload for manual ledger entries.
type transactionRequest struct {
	AccountID   int     `json:"account_id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	TxDate      string  `json:"tx_date"`
}

func parseTxDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", s)
}

func createEntry(c *fiber.Ctx, db *sql.DB, txType models.TransactionType, kind models.CategoryKind) error {
	var req transactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if req.AccountID <= 0 {
		return fiber.NewError(400, "Account is required")
	}
	if req.Amount <= 0 {
		return fiber.NewError(400, "Amount must be greater than zero")
	}

	txDate, err := parseTxDate(req.TxDate)
	if err != nil {
		return fiber.NewError(400, "Invalid date, expected YYYY-MM-DD")
	}

	account, err := database.GetAccountByID(db, req.AccountID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Account not found")
		}
		return fiber.NewError(500, "Database error")
	}

	if req.Category != "" && kind != "" {
		if _, err := database.GetOrCreateCategory(db, req.Category, kind); err != nil {
			return fiber.NewError(500, "Failed to resolve category")
		}
	}

	t := &models.FinanceTransaction{
		AccountID:   account.ID,
		Mode:        models.TransactionMode(account.AccountType),
		Type:        txType,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		TxDate:      txDate,
	}
	if err := database.CreateTransaction(db, t); err != nil {
		return fiber.NewError(500, "Failed to record transaction")
	}

	return c.JSON(fiber.Map{"success": true, "transaction": t})
}

func AddIncomeAPI(c *fiber.Ctx, db *sql.DB) error {
	return createEntry(c, db, models.TxIncome, models.IncomeCategory)
}

func AddExpenseAPI(c *fiber.Ctx, db *sql.DB) error {
	return createEntry(c, db, models.TxExpense, models.ExpenseCategory)
}

func AddDepositAPI(c *fiber.Ctx, db *sql.DB) error {
	return createEntry(c, db, models.TxDeposit, "")
}

func AddWithdrawalAPI(c *fiber.Ctx, db *sql.DB) error {
	return createEntry(c, db, models.TxWithdrawal, "")
}

// SelfWithdrawalAPI moves money from a bank account into the cash account:
// one WITHDRAWAL on the bank side and one DEPOSIT on the cash side,
// committed together.
func SelfWithdrawalAPI(c *fiber.Ctx, db *sql.DB) error {
	var req transactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if req.AccountID <= 0 {
		return fiber.NewError(400, "Bank account is required")
	}
	if req.Amount <= 0 {
		return fiber.NewError(400, "Amount must be greater than zero")
	}

	txDate, err := parseTxDate(req.TxDate)
	if err != nil {
		return fiber.NewError(400, "Invalid date, expected YYYY-MM-DD")
	}

	bank, err := database.GetAccountByID(db, req.AccountID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Account not found")
		}
		return fiber.NewError(500, "Database error")
	}
	if bank.AccountType != models.AccountBank {
		return fiber.NewError(400, "Self withdrawal requires a bank account")
	}

	cash, err := database.GetCashAccount(db)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(400, "No cash account exists")
		}
		return fiber.NewError(500, "Database error")
	}

	withdrawal := &models.FinanceTransaction{
		AccountID:   bank.ID,
		Mode:        models.ModeBank,
		Type:        models.TxWithdrawal,
		Amount:      req.Amount,
		Description: req.Description,
		TxDate:      txDate,
	}
	deposit := &models.FinanceTransaction{
		AccountID:   cash.ID,
		Mode:        models.ModeCash,
		Type:        models.TxDeposit,
		Amount:      req.Amount,
		Description: req.Description,
		TxDate:      txDate,
	}

	if err := database.CreateSelfWithdrawal(db, withdrawal, deposit); err != nil {
		return fiber.NewError(500, "Failed to record self withdrawal")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"withdrawal": withdrawal,
		"deposit":    deposit,
	})
}

func GetTransactionsAPI(c *fiber.Ctx, db *sql.DB) error {
	f := database.TransactionFilters{
		AccountID: c.QueryInt("account_id"),
		Type:      c.Query("tx_type"),
		Limit:     c.QueryInt("limit", 100),
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

	txs, err := database.GetTransactions(db, f)
	if err != nil {
		return fiber.NewError(500, "Failed to load transactions")
	}
	return c.JSON(fiber.Map{"success": true, "transactions": txs})
}

// DeleteTransactionAPI removes one ledger entry. The owning account's
// opening balance is never adjusted; reports derive balances from the
// remaining rows.
func DeleteTransactionAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")
	if id == "" {
		return fiber.NewError(400, "Transaction id is required")
	}
	if err := database.DeleteTransaction(db, id); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Transaction not found")
		}
		return fiber.NewError(500, "Failed to delete transaction")
	}
	return c.JSON(fiber.Map{"success": true})
}

// LedgerReportAPI returns the statement for one account and date range:
// opening balance, totals, closing balance, and itemized rows with running
// balances.
func LedgerReportAPI(c *fiber.Ctx, db *sql.DB) error {
	accountID := c.QueryInt("account_id")
	if accountID <= 0 {
		return fiber.NewError(400, "Account is required")
	}

	fromStr := c.Query("from_date")
	toStr := c.Query("to_date")
	if fromStr == "" || toStr == "" {
		return fiber.NewError(400, "from_date and to_date are required")
	}
	fromDate, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return fiber.NewError(400, "Invalid from_date, expected YYYY-MM-DD")
	}
	toDate, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return fiber.NewError(400, "Invalid to_date, expected YYYY-MM-DD")
	}
	if toDate.Before(fromDate) {
		return fiber.NewError(400, "to_date must not precede from_date")
	}

	account, err := database.GetAccountByID(db, accountID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Account not found")
		}
		return fiber.NewError(500, "Database error")
	}

	priorSum, err := database.GetPriorSignedSum(db, account.ID, fromDate)
	if err != nil {
		return fiber.NewError(500, "Failed to compute opening balance")
	}

	txs, err := database.GetTransactionsInRange(db, account.ID, fromDate, toDate)
	if err != nil {
		return fiber.NewError(500, "Failed to load transactions")
	}

	// Optional filters narrow the itemized rows only; the opening balance
	// always reflects the full history.
	if txType := c.Query("tx_type"); txType != "" {
		filtered := txs[:0]
		for _, t := range txs {
			if string(t.Type) == txType {
				filtered = append(filtered, t)
			}
		}
		txs = filtered
	}
	if category := c.Query("category"); category != "" {
		filtered := txs[:0]
		for _, t := range txs {
			if t.Category == category {
				filtered = append(filtered, t)
			}
		}
		txs = filtered
	}

	statement := BuildStatement(account.OpeningBalance, priorSum, txs)

	return c.JSON(fiber.Map{
		"success":   true,
		"account":   account,
		"from_date": fromStr,
		"to_date":   toStr,
		"statement": statement,
	})
}

func GetCategoriesAPI(c *fiber.Ctx, db *sql.DB) error {
	kind := models.CategoryKind(c.Query("kind", string(models.IncomeCategory)))
	if kind != models.IncomeCategory && kind != models.ExpenseCategory {
		return fiber.NewError(400, "Kind must be income or expense")
	}

	cats, err := database.GetCategories(db, kind)
	if err != nil {
		return fiber.NewError(500, "Failed to load categories")
	}
	return c.JSON(fiber.Map{"success": true, "categories": cats})
}

func CreateCategoryAPI(c *fiber.Ctx, db *sql.DB) error {
	type categoryRequest struct {
		Name string              `json:"category_name"`
		Kind models.CategoryKind `json:"kind"`
	}
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if req.Name == "" {
		return fiber.NewError(400, "Category name is required")
	}
	if req.Kind != models.IncomeCategory && req.Kind != models.ExpenseCategory {
		return fiber.NewError(400, "Kind must be income or expense")
	}

	cat, err := database.GetOrCreateCategory(db, req.Name, req.Kind)
	if err != nil {
		return fiber.NewError(500, "Failed to create category")
	}
	return c.JSON(fiber.Map{"success": true, "category": cat})
}

func DeleteCategoryAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid category id")
	}
	kind := models.CategoryKind(c.Query("kind"))
	if kind != models.IncomeCategory && kind != models.ExpenseCategory {
		return fiber.NewError(400, "Kind must be income or expense")
	}

	if err := database.DeleteCategory(db, id, kind); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Category not found")
		}
		return fiber.NewError(500, "Failed to delete category")
	}
	return c.JSON(fiber.Map{"success": true})
}
