package models

import "time"

// FinanceTransaction is an immutable entry in the general ledger. Rows are
// only ever inserted or deleted; deleting a row never touches the owning
// account's stored opening balance.
type FinanceTransaction struct {
	ID            string          `json:"id" gorm:"primaryKey;type:uuid"`
	AccountID     int             `json:"account_id" gorm:"not null;index" validate:"required"`
	Mode          TransactionMode `json:"transaction_mode" gorm:"type:varchar(10);not null"`
	Type          TransactionType `json:"transaction_type" gorm:"type:varchar(15);not null;index"`
	Amount        float64         `json:"amount" gorm:"type:numeric(12,2);not null" validate:"required,gt=0"`
	Category      string          `json:"category,omitempty"`
	Description   string          `json:"description,omitempty" gorm:"type:text"`
	AttachmentURL *string         `json:"attachment_url,omitempty"`
	TxDate        time.Time       `json:"tx_date" gorm:"not null;index;type:date" validate:"required"`
	CreatedAt     time.Time       `json:"created_at" gorm:"autoCreateTime"`

	// Joined for listings
	AccountName string      `json:"account_name,omitempty" gorm:"-"`
	AccountType AccountType `json:"account_type,omitempty" gorm:"-"`
}

// SignedAmount returns the transaction's effect on the account balance:
// positive for INCOME/DEPOSIT, negative for EXPENSE/WITHDRAWAL.
func (t *FinanceTransaction) SignedAmount() float64 {
	if t.Type.IsInflow() {
		return t.Amount
	}
	return -t.Amount
}
