package models

// Category is an income or expense category. Administrators add these
// freely; the collection and entry paths resolve them by name with
// upsert-on-first-use.
type Category struct {
	ID       int    `json:"id" gorm:"primaryKey"`
	Name     string `json:"category_name" gorm:"uniqueIndex;not null" validate:"required"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}
