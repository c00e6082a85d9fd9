package models

// AccountType defines the kind of holding point an account represents.
type AccountType string

const (
	AccountCash AccountType = "CASH"
	AccountBank AccountType = "BANK"
)

// TransactionMode mirrors the account type a transaction was made through.
type TransactionMode string

const (
	ModeCash TransactionMode = "CASH"
	ModeBank TransactionMode = "BANK"
)

// TransactionType defines the direction of a finance transaction.
type TransactionType string

const (
	TxIncome     TransactionType = "INCOME"
	TxExpense    TransactionType = "EXPENSE"
	TxDeposit    TransactionType = "DEPOSIT"
	TxWithdrawal TransactionType = "WITHDRAWAL"
)

// IsInflow reports whether a transaction of this type increases the balance.
func (t TransactionType) IsInflow() bool {
	return t == TxIncome || t == TxDeposit
}

// FeeStatus defines the payment status of an assigned fee.
type FeeStatus string

const (
	FeeNotPaid       FeeStatus = "Not Paid"
	FeePartiallyPaid FeeStatus = "Partially Paid"
	FeePaid          FeeStatus = "Paid"
)

// DeriveFeeStatus maps an assigned amount and the sum paid so far to the
// stored status. Order of payments never matters, only the sum.
func DeriveFeeStatus(amount, paidSum float64) FeeStatus {
	switch {
	case paidSum >= amount:
		return FeePaid
	case paidSum > 0:
		return FeePartiallyPaid
	default:
		return FeeNotPaid
	}
}

// RequestStatus defines the status of a finance approval request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// ChatRole defines the role of a finance chat user.
type ChatRole string

const (
	RoleAdmin      ChatRole = "admin"
	RoleAccountant ChatRole = "accountant"
)

// CategoryKind selects which category table a lookup targets.
type CategoryKind string

const (
	IncomeCategory  CategoryKind = "income"
	ExpenseCategory CategoryKind = "expense"
)
