package models

import "time"

// FeePayment records an amount paid against one assigned fee. Metadata holds
// an optional JSON-encoded blob with reference/UTR fields supplied by the
// collection form.
type FeePayment struct {
	ID            int       `json:"id" gorm:"primaryKey"`
	AssignedFeeID int       `json:"assigned_fee_id" gorm:"not null;index" validate:"required"`
	AmountPaid    float64   `json:"amount_paid" gorm:"type:numeric(10,2);not null" validate:"required,gt=0"`
	PaidOn        time.Time `json:"paid_on" gorm:"type:date"`
	PaymentMode   string    `json:"payment_mode" gorm:"type:varchar(100)" validate:"required"`
	AccountID     *int      `json:"account_id,omitempty" gorm:"index"`
	Notes         string    `json:"notes,omitempty" gorm:"type:text"`
	Metadata      *string   `json:"metadata,omitempty" gorm:"type:text"`
	AttachmentURL *string   `json:"attachment_url,omitempty"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Joined for listings
	StudentID string  `json:"student_id,omitempty" gorm:"-"`
	HeadName  string  `json:"head_name,omitempty" gorm:"-"`
	Assigned  float64 `json:"assigned_amount,omitempty" gorm:"-"`
}

// FeeReceipt pairs 1:1 with a payment and holds the generated receipt
// number. Never updated after insert.
type FeeReceipt struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	PaymentID int       `json:"payment_id" gorm:"uniqueIndex;not null"`
	ReceiptNo string    `json:"receipt_no" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
