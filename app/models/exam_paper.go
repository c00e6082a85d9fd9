package models

import "time"

// ExamPaper is one archived answer sheet or question paper for a student.
// FileURL is the stored file name under the exam papers upload folder.
type ExamPaper struct {
	ID         int       `json:"id" gorm:"primaryKey"`
	StudentID  string    `json:"student_id" gorm:"not null;index" validate:"required"`
	Subject    string    `json:"subject,omitempty"`
	ExamName   string    `json:"exam_name" validate:"required"`
	ExamDate   *time.Time `json:"exam_date,omitempty" gorm:"type:date"`
	FileURL    string    `json:"file_url" gorm:"not null"`
	UploadedAt time.Time `json:"uploaded_at" gorm:"autoCreateTime"`

	// Joined for listings
	StudentName    string `json:"student_name,omitempty" gorm:"-"`
	RegisterNumber string `json:"register_number,omitempty" gorm:"-"`
	RollNo         string `json:"roll_no,omitempty" gorm:"-"`
}
