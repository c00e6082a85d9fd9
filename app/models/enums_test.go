package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveFeeStatusBoundaries(t *testing.T) {
	assert.Equal(t, FeeNotPaid, DeriveFeeStatus(1000, 0))
	assert.Equal(t, FeePartiallyPaid, DeriveFeeStatus(1000, 0.01))
	assert.Equal(t, FeePartiallyPaid, DeriveFeeStatus(1000, 999.99))
	assert.Equal(t, FeePaid, DeriveFeeStatus(1000, 1000))
	assert.Equal(t, FeePaid, DeriveFeeStatus(1000, 1500))
}

func TestDeriveFeeStatusIsOrderIndependent(t *testing.T) {
	// 1000 assigned, payments of 400 then 600 in either order.
	assert.Equal(t, FeePartiallyPaid, DeriveFeeStatus(1000, 400))
	assert.Equal(t, FeePartiallyPaid, DeriveFeeStatus(1000, 600))
	assert.Equal(t, FeePaid, DeriveFeeStatus(1000, 400+600))
	assert.Equal(t, FeePaid, DeriveFeeStatus(1000, 600+400))
}

func TestTransactionTypeDirection(t *testing.T) {
	assert.True(t, TxIncome.IsInflow())
	assert.True(t, TxDeposit.IsInflow())
	assert.False(t, TxExpense.IsInflow())
	assert.False(t, TxWithdrawal.IsInflow())
}

func TestSignedAmount(t *testing.T) {
	in := &FinanceTransaction{Type: TxDeposit, Amount: 250}
	out := &FinanceTransaction{Type: TxExpense, Amount: 250}

	assert.Equal(t, 250.0, in.SignedAmount())
	assert.Equal(t, -250.0, out.SignedAmount())
}
