package models

import "time"

// FeeHead is a named billable item, e.g. Tuition or Hostel.
type FeeHead struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null" validate:"required"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// FeeType categorises how a fee is charged, e.g. Full or Partial.
type FeeType struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null" validate:"required"`
}

// FeeMaster binds a fee head and type to a concrete amount and validity
// window. Assigned fees copy their amount and due date from here.
type FeeMaster struct {
	ID        int        `json:"id" gorm:"primaryKey"`
	HeadID    int        `json:"head_id" gorm:"not null;index" validate:"required"`
	TypeID    int        `json:"type_id" gorm:"not null;index" validate:"required"`
	Amount    float64    `json:"amount" gorm:"type:numeric(10,2);not null" validate:"required,gt=0"`
	StartDate *time.Time `json:"start_date,omitempty" gorm:"type:date"`
	EndDate   *time.Time `json:"end_date,omitempty" gorm:"type:date"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`

	HeadName string `json:"head_name,omitempty" gorm:"-"`
	TypeName string `json:"type_name,omitempty" gorm:"-"`
}
