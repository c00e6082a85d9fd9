package models

// Master is a named reference list (course, branch, department, batch,
// session, payment mode). Masters are created on first use.
type Master struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"master_name" gorm:"uniqueIndex;not null"`
}

// MasterItem is one entry of a master list.
type MasterItem struct {
	ID       int    `json:"id" gorm:"primaryKey"`
	MasterID int    `json:"master_id" gorm:"not null;index"`
	Name     string `json:"name" gorm:"not null"`
}
