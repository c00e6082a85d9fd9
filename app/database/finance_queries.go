package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/models"
)

const accountCols = `id, account_type, account_name, COALESCE(account_holder_name,''),
	COALESCE(account_number,''), COALESCE(ifsc_code,''), COALESCE(branch_name,''),
	opening_balance, created_at`

func scanAccount(r rowScanner) (*models.Account, error) {
	a := &models.Account{}
	err := r.Scan(&a.ID, &a.AccountType, &a.AccountName, &a.AccountHolderName,
		&a.AccountNumber, &a.IFSCCode, &a.BranchName,
		&a.OpeningBalance, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func GetAccounts(db *sql.DB) ([]*models.Account, error) {
	rows, err := db.Query(`SELECT ` + accountCols + ` FROM accounts ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func GetAccountByID(db *sql.DB, id int) (*models.Account, error) {
	row := db.QueryRow(`SELECT `+accountCols+` FROM accounts WHERE id = $1`, id)
	return scanAccount(row)
}

// GetCashAccount returns the cash-in-hand account. The UI only ever creates
// one; sql.ErrNoRows means none exists yet.
func GetCashAccount(db *sql.DB) (*models.Account, error) {
	row := db.QueryRow(`SELECT `+accountCols+` FROM accounts WHERE account_type = $1 ORDER BY id ASC LIMIT 1`,
		models.AccountCash)
	return scanAccount(row)
}

func CreateAccount(db *sql.DB, a *models.Account) error {
	return db.QueryRow(`INSERT INTO accounts
		(account_type, account_name, account_holder_name, account_number,
		 ifsc_code, branch_name, opening_balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`,
		a.AccountType, a.AccountName, a.AccountHolderName, a.AccountNumber,
		a.IFSCCode, a.BranchName, a.OpeningBalance).Scan(&a.ID, &a.CreatedAt)
}

func UpdateAccount(db *sql.DB, a *models.Account) error {
	res, err := db.Exec(`UPDATE accounts SET account_name=$2, account_holder_name=$3,
		account_number=$4, ifsc_code=$5, branch_name=$6, opening_balance=$7
		WHERE id=$1`,
		a.ID, a.AccountName, a.AccountHolderName, a.AccountNumber,
		a.IFSCCode, a.BranchName, a.OpeningBalance)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

func DeleteAccount(db *sql.DB, id int) error {
	res, err := db.Exec(`DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

const transactionCols = `t.id, t.account_id, t.transaction_mode, t.transaction_type,
	t.amount, COALESCE(t.category,''), COALESCE(t.description,''),
	t.attachment_url, t.tx_date, t.created_at, a.account_name, a.account_type`

func scanTransaction(r rowScanner) (*models.FinanceTransaction, error) {
	t := &models.FinanceTransaction{}
	err := r.Scan(&t.ID, &t.AccountID, &t.Mode, &t.Type,
		&t.Amount, &t.Category, &t.Description,
		&t.AttachmentURL, &t.TxDate, &t.CreatedAt,
		&t.AccountName, &t.AccountType)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func insertTransaction(q interface {
	QueryRow(query string, args ...interface{}) *sql.Row
}, t *models.FinanceTransaction) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return q.QueryRow(`INSERT INTO finance_transactions
		(id, account_id, transaction_mode, transaction_type, amount,
		 category, description, attachment_url, tx_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`,
		t.ID, t.AccountID, t.Mode, t.Type, t.Amount,
		t.Category, t.Description, t.AttachmentURL, t.TxDate).
		Scan(&t.CreatedAt)
}

// CreateTransaction records one ledger entry. The account's opening balance
// is never touched; balances are derived at read time.
func CreateTransaction(db *sql.DB, t *models.FinanceTransaction) error {
	return insertTransaction(db, t)
}

// CreateSelfWithdrawal records a bank withdrawal and the matching cash
// deposit atomically.
func CreateSelfWithdrawal(db *sql.DB, withdrawal, deposit *models.FinanceTransaction) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := insertTransaction(tx, withdrawal); err != nil {
		return err
	}
	if err := insertTransaction(tx, deposit); err != nil {
		return err
	}
	return tx.Commit()
}

func GetTransactionByID(db *sql.DB, id string) (*models.FinanceTransaction, error) {
	row := db.QueryRow(`SELECT `+transactionCols+` FROM finance_transactions t
		JOIN accounts a ON a.id = t.account_id WHERE t.id = $1`, id)
	return scanTransaction(row)
}

// DeleteTransaction removes one ledger entry. This is a pure log removal:
// derived balances simply stop counting the row.
func DeleteTransaction(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM finance_transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

// TransactionFilters narrows transaction listings.
type TransactionFilters struct {
	AccountID int
	Type      string
	From      *time.Time
	To        *time.Time
	Limit     int
}

func GetTransactions(db *sql.DB, f TransactionFilters) ([]*models.FinanceTransaction, error) {
	query := `SELECT ` + transactionCols + ` FROM finance_transactions t
		JOIN accounts a ON a.id = t.account_id WHERE 1=1`
	var args []interface{}

	if f.AccountID > 0 {
		args = append(args, f.AccountID)
		query += fmt.Sprintf(" AND t.account_id = $%d", len(args))
	}
	if f.Type != "" {
		args = append(args, f.Type)
		query += fmt.Sprintf(" AND t.transaction_type = $%d", len(args))
	}
	if f.From != nil {
		args = append(args, *f.From)
		query += fmt.Sprintf(" AND t.tx_date >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		query += fmt.Sprintf(" AND t.tx_date <= $%d", len(args))
	}

	query += ` ORDER BY t.tx_date DESC, t.created_at DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []*models.FinanceTransaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

func categoryTable(kind models.CategoryKind) string {
	if kind == models.IncomeCategory {
		return "income_categories"
	}
	return "expense_categories"
}

func GetCategories(db *sql.DB, kind models.CategoryKind) ([]*models.Category, error) {
	rows, err := db.Query(`SELECT id, category_name, is_active FROM ` + categoryTable(kind) +
		` WHERE is_active = true ORDER BY category_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []*models.Category
	for rows.Next() {
		c := &models.Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.IsActive); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// GetOrCreateCategory resolves a category by name, creating it on first use.
func GetOrCreateCategory(db *sql.DB, name string, kind models.CategoryKind) (*models.Category, error) {
	c := &models.Category{Name: name, IsActive: true}
	err := db.QueryRow(`INSERT INTO `+categoryTable(kind)+` (category_name)
		VALUES ($1)
		ON CONFLICT (category_name) DO UPDATE SET category_name = EXCLUDED.category_name
		RETURNING id, is_active`, name).Scan(&c.ID, &c.IsActive)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func DeleteCategory(db *sql.DB, id int, kind models.CategoryKind) error {
	res, err := db.Exec(`UPDATE `+categoryTable(kind)+` SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}
