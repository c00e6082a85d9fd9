package models

import "time"

// Account represents a cash or bank holding point in the finance ledger.
// OpeningBalance is a fixed baseline set when the account is created; it is
// never mutated by transactions. Balances are always derived from the
// baseline plus the transaction log.
type Account struct {
	ID                int         `json:"id" gorm:"primaryKey"`
	AccountType       AccountType `json:"account_type" gorm:"type:varchar(20);not null" validate:"required,oneof=CASH BANK"`
	AccountName       string      `json:"account_name" gorm:"not null" validate:"required"`
	AccountHolderName string      `json:"account_holder_name,omitempty"`
	AccountNumber     string      `json:"account_number,omitempty" gorm:"type:varchar(30)"`
	IFSCCode          string      `json:"ifsc_code,omitempty" gorm:"type:varchar(20)"`
	BranchName        string      `json:"branch_name,omitempty"`
	OpeningBalance    float64     `json:"opening_balance" gorm:"type:numeric(12,2);default:0"`
	CreatedAt         time.Time   `json:"created_at" gorm:"autoCreateTime"`
}
