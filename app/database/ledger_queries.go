package database

import (
	"database/sql"
	"time"

	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/models"
)

// GetPriorSignedSum returns the net signed effect of every transaction on
// the account dated strictly before fromDate. Added to the account's fixed
// opening balance it yields the statement's opening figure.
func GetPriorSignedSum(db *sql.DB, accountID int, fromDate time.Time) (float64, error) {
	var sum float64
	err := db.QueryRow(`SELECT COALESCE(SUM(
			CASE WHEN transaction_type IN ($2, $3) THEN amount ELSE -amount END
		), 0)
		FROM finance_transactions
		WHERE account_id = $1 AND tx_date < $4`,
		accountID, models.TxIncome, models.TxDeposit, fromDate).Scan(&sum)
	return sum, err
}

// GetTransactionsInRange returns the account's transactions with tx_date in
// [fromDate, toDate], oldest first. Same-day ties break on seq, the
// monotonic insertion counter, so a statement's running balance is stable
// across reads.
func GetTransactionsInRange(db *sql.DB, accountID int, fromDate, toDate time.Time) ([]*models.FinanceTransaction, error) {
	rows, err := db.Query(`SELECT `+transactionCols+`
		FROM finance_transactions t
		JOIN accounts a ON a.id = t.account_id
		WHERE t.account_id = $1 AND t.tx_date >= $2 AND t.tx_date <= $3
		ORDER BY t.tx_date ASC, t.seq ASC`,
		accountID, fromDate, toDate)
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
