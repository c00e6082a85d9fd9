package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/models"
)

func transactionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "account_id", "transaction_mode", "transaction_type",
		"amount", "category", "description", "attachment_url",
		"tx_date", "created_at", "account_name", "account_type",
	})
}

func TestGetTransactionsInRangeOrdersByInsertionSequence(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()
	// Two same-day rows: the UUID primary key is random, so ordering must
	// come from the seq column, not from id.
	mock.ExpectQuery(`ORDER BY t.tx_date ASC, t.seq ASC`).
		WithArgs(3, day, day).
		WillReturnRows(transactionRows().
			AddRow("f0e1", 3, "BANK", "INCOME", 200.0, "Fees", "", nil, day, now, "Main", "BANK").
			AddRow("a9b8", 3, "BANK", "EXPENSE", 50.0, "Stationery", "", nil, day, now, "Main", "BANK"))

	txs, err := GetTransactionsInRange(db, 3, day, day)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "f0e1", txs[0].ID)
	assert.Equal(t, "a9b8", txs[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPriorSignedSumCountsInflowsPositive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("tx_date <").
		WithArgs(3, string(models.TxIncome), string(models.TxDeposit), from).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(725.50))

	sum, err := GetPriorSignedSum(db, 3, from)
	require.NoError(t, err)
	assert.Equal(t, 725.50, sum)
	assert.NoError(t, mock.ExpectationsWereMet())
}
