package database

import (
	"database/sql"
	"time"
)

// DashboardStats is the aggregate snapshot served on the admin landing page.
type DashboardStats struct {
	TotalStudents   int     `json:"total_students"`
	TotalDropouts   int     `json:"total_dropouts"`
	PendingFees     float64 `json:"pending_fees"`
	CollectedToday  float64 `json:"collected_today"`
	CollectedMonth  float64 `json:"collected_month"`
	PendingRequests int     `json:"pending_requests"`
}

// AccountBalance is one account with its derived current balance.
type AccountBalance struct {
	AccountID   int     `json:"account_id"`
	AccountName string  `json:"account_name"`
	AccountType string  `json:"account_type"`
	Balance     float64 `json:"balance"`
}

func GetDashboardStats(db *sql.DB) (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := db.QueryRow(`SELECT COUNT(*) FROM students`).Scan(&stats.TotalStudents); err != nil {
		return nil, err
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM dropouts`).Scan(&stats.TotalDropouts); err != nil {
		return nil, err
	}

	err := db.QueryRow(`SELECT COALESCE(SUM(af.amount), 0) -
		COALESCE((SELECT SUM(p.amount_paid) FROM fee_payments p), 0)
		FROM assigned_fees af`).Scan(&stats.PendingFees)
	if err != nil {
		return nil, err
	}
	if stats.PendingFees < 0 {
		stats.PendingFees = 0
	}

	today := time.Now().Format("2006-01-02")
	err = db.QueryRow(`SELECT COALESCE(SUM(amount_paid), 0) FROM fee_payments
		WHERE paid_on = $1`, today).Scan(&stats.CollectedToday)
	if err != nil {
		return nil, err
	}

	monthStart := time.Now().Format("2006-01") + "-01"
	err = db.QueryRow(`SELECT COALESCE(SUM(amount_paid), 0) FROM fee_payments
		WHERE paid_on >= $1`, monthStart).Scan(&stats.CollectedMonth)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM finance_requests WHERE status = 'pending'`).
		Scan(&stats.PendingRequests)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// GetAccountBalances returns every account with its balance derived from
// the fixed baseline plus the full signed transaction sum.
func GetAccountBalances(db *sql.DB) ([]*AccountBalance, error) {
	rows, err := db.Query(`SELECT a.id, a.account_name, a.account_type,
		a.opening_balance + COALESCE((SELECT SUM(
			CASE WHEN t.transaction_type IN ('INCOME', 'DEPOSIT')
				THEN t.amount ELSE -t.amount END)
			FROM finance_transactions t WHERE t.account_id = a.id), 0)
		FROM accounts a ORDER BY a.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var balances []*AccountBalance
	for rows.Next() {
		b := &AccountBalance{}
		if err := rows.Scan(&b.AccountID, &b.AccountName, &b.AccountType, &b.Balance); err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}
