package models

import "time"

// AssignedFee is an obligation linking one student to one fee master entry
// with a fixed amount. Status is derived from the payment sum and recomputed
// after every payment insert or delete, never cached across requests.
type AssignedFee struct {
	ID          int        `json:"id" gorm:"primaryKey"`
	StudentID   string     `json:"student_id" gorm:"not null;index" validate:"required"`
	FeeMasterID int        `json:"fee_master_id" gorm:"not null;index" validate:"required"`
	AssignedOn  time.Time  `json:"assigned_on" gorm:"type:date"`
	DueDate     *time.Time `json:"due_date,omitempty" gorm:"type:date"`
	Amount      float64    `json:"amount" gorm:"type:numeric(10,2);not null" validate:"required,gt=0"`
	Status      FeeStatus  `json:"status" gorm:"type:varchar(20);default:'Not Paid'"`

	// Joined for listings
	StudentName string  `json:"student_name,omitempty" gorm:"-"`
	HeadName    string  `json:"head_name,omitempty" gorm:"-"`
	TypeName    string  `json:"type_name,omitempty" gorm:"-"`
	PaidSum     float64 `json:"paid_sum,omitempty" gorm:"-"`
}
