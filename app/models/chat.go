package models

import "time"

// ChatUser is a participant of the finance approval chat. Accountants raise
// requests; admins approve or reject them.
type ChatUser struct {
	UserID   int      `json:"user_id" gorm:"primaryKey"`
	Username string   `json:"username" gorm:"uniqueIndex;not null" validate:"required"`
	Password string   `json:"-" gorm:"not null" validate:"required"`
	FullName string   `json:"full_name,omitempty"`
	Role     ChatRole `json:"role" gorm:"type:varchar(20);not null"`
	Active   bool     `json:"active" gorm:"default:true"`
}

// FinanceRequest is a spending request raised by an accountant, discussed in
// a message thread and settled by an admin.
type FinanceRequest struct {
	ID            int           `json:"id" gorm:"primaryKey"`
	RequesterID   int           `json:"requester_id" gorm:"not null;index"`
	RequesterName string        `json:"requester_name"`
	Amount        float64       `json:"amount" gorm:"type:numeric(12,2);not null" validate:"required,gt=0"`
	Purpose       string        `json:"purpose" gorm:"type:text;not null" validate:"required"`
	Attachment    *string       `json:"attachment,omitempty"`
	Status        RequestStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	Remarks       string        `json:"remarks,omitempty" gorm:"type:text"`
	CreatedAt     time.Time     `json:"created_at" gorm:"autoCreateTime"`

	MsgCount int `json:"msg_count" gorm:"-"`
}

// ChatMessage is one message inside a finance request thread.
type ChatMessage struct {
	ID         int       `json:"id" gorm:"primaryKey"`
	RequestID  int       `json:"request_id" gorm:"not null;index"`
	SenderID   int       `json:"sender_id" gorm:"not null"`
	SenderName string    `json:"sender_name"`
	Message    string    `json:"message,omitempty" gorm:"type:text"`
	FileURL    *string   `json:"file_url,omitempty"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}
