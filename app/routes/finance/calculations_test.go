package finance

import (
	"testing"
	"time"

	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(txType models.TransactionType, amount float64, date string) *models.FinanceTransaction {
	d, _ := time.Parse("2006-01-02", date)
	return &models.FinanceTransaction{
		ID:     date + string(txType),
		Type:   txType,
		Mode:   models.ModeBank,
		Amount: amount,
		TxDate: d,
	}
}

func TestBuildStatementRunningBalances(t *testing.T) {
	// Baseline 1000, one +500 before the window, then 200 in and 300 out
	// inside it.
	st := BuildStatement(1000, 500, []*models.FinanceTransaction{
		tx(models.TxIncome, 200, "2025-04-10"),
		tx(models.TxExpense, 300, "2025-04-15"),
	})

	assert.Equal(t, 1500.0, st.OpeningBalance)
	assert.Equal(t, 200.0, st.TotalIn)
	assert.Equal(t, 300.0, st.TotalOut)
	assert.Equal(t, 1400.0, st.ClosingBalance)

	require.Len(t, st.Rows, 2)
	assert.Equal(t, 1700.0, st.Rows[0].RunningBalance)
	assert.Equal(t, 1400.0, st.Rows[1].RunningBalance)
}

func TestBuildStatementInOutColumns(t *testing.T) {
	st := BuildStatement(0, 0, []*models.FinanceTransaction{
		tx(models.TxIncome, 200, "2025-04-10"),
		tx(models.TxExpense, 300, "2025-04-15"),
		tx(models.TxDeposit, 50, "2025-04-16"),
		tx(models.TxWithdrawal, 25, "2025-04-17"),
	})

	require.Len(t, st.Rows, 4)
	for _, r := range st.Rows {
		// A row is either an inflow or an outflow, never both.
		if r.InAmount > 0 {
			assert.Zero(t, r.OutAmount, "row %s", r.ID)
			assert.Equal(t, r.Amount, r.InAmount)
		} else {
			assert.Equal(t, r.Amount, r.OutAmount, "row %s", r.ID)
		}
	}
	assert.Equal(t, 200.0, st.Rows[0].InAmount)
	assert.Equal(t, 300.0, st.Rows[1].OutAmount)
	assert.Equal(t, 50.0, st.Rows[2].InAmount)
	assert.Equal(t, 25.0, st.Rows[3].OutAmount)
}

func TestBuildStatementEmptyWindow(t *testing.T) {
	st := BuildStatement(250, -100, nil)

	assert.Equal(t, 150.0, st.OpeningBalance)
	assert.Equal(t, st.OpeningBalance, st.ClosingBalance)
	assert.Zero(t, st.TotalIn)
	assert.Zero(t, st.TotalOut)
	assert.Empty(t, st.Rows)
}

func TestBuildStatementClosingIdentity(t *testing.T) {
	txs := []*models.FinanceTransaction{
		tx(models.TxDeposit, 1000, "2025-06-01"),
		tx(models.TxWithdrawal, 450, "2025-06-02"),
		tx(models.TxIncome, 75.50, "2025-06-03"),
		tx(models.TxExpense, 20.25, "2025-06-03"),
		tx(models.TxExpense, 5, "2025-06-04"),
	}

	st := BuildStatement(5000, 1234.56, txs)

	assert.InDelta(t, st.OpeningBalance+st.TotalIn-st.TotalOut, st.ClosingBalance, 1e-9)
	// The last running balance is the closing balance.
	assert.InDelta(t, st.ClosingBalance, st.Rows[len(st.Rows)-1].RunningBalance, 1e-9)
}

func TestBuildStatementDepositAndWithdrawalDirections(t *testing.T) {
	st := BuildStatement(0, 0, []*models.FinanceTransaction{
		tx(models.TxDeposit, 100, "2025-01-01"),
		tx(models.TxWithdrawal, 40, "2025-01-02"),
	})

	assert.Equal(t, 100.0, st.TotalIn)
	assert.Equal(t, 40.0, st.TotalOut)
	assert.Equal(t, 60.0, st.ClosingBalance)
}
