package models

import "time"

// Student is the flat record kept for every active student. The same field
// set is carried verbatim into the dropouts table when a student withdraws,
// so a student row lives in exactly one of the two tables at any time.
type Student struct {
	ID               string     `json:"id" gorm:"primaryKey" validate:"required"`
	AdmissionDate    *time.Time `json:"admission_date,omitempty" gorm:"type:date"`
	Batch            string     `json:"batch,omitempty"`
	Branch           string     `json:"branch,omitempty"`
	Course           string     `json:"course,omitempty"`
	Department       string     `json:"department,omitempty"`
	EnrollmentNo     string     `json:"enrollment_no,omitempty"`
	LastExamPassed   string     `json:"last_exam_passed,omitempty"`
	PreviousSchool   string     `json:"previous_school,omitempty"`
	RegisterNumber   string     `json:"register_number,omitempty"`
	RegistrationNo   string     `json:"registration_no,omitempty"`
	RollNo           string     `json:"roll_no,omitempty"`
	Session          string     `json:"session,omitempty"`
	TenthBoard       string     `json:"tenth_board,omitempty"`
	TenthPercent     string     `json:"tenth_percent,omitempty"`
	TwelfthBoard     string     `json:"twelfth_board,omitempty"`
	TwelfthPercent   string     `json:"twelfth_percent,omitempty"`
	Name             string     `json:"name" validate:"required"`
	Gender           string     `json:"gender,omitempty"`
	DOB              *time.Time `json:"dob,omitempty" gorm:"type:date"`
	BloodGroup       string     `json:"blood_group,omitempty"`
	Email            string     `json:"email,omitempty"`
	Aadhaar          string     `json:"aadhaar,omitempty"`
	Phone            string     `json:"phone,omitempty"`
	Address          string     `json:"address,omitempty" gorm:"type:text"`
	Caste            string     `json:"caste,omitempty"`
	Religion         string     `json:"religion,omitempty"`
	FatherName       string     `json:"father_name,omitempty"`
	FatherMobile     string     `json:"father_mobile,omitempty"`
	FatherOccupation string     `json:"father_occupation,omitempty"`
	MotherName       string     `json:"mother_name,omitempty"`
	MotherMobile     string     `json:"mother_mobile,omitempty"`
	GuardianName     string     `json:"guardian_name,omitempty"`
	GuardianMobile   string     `json:"guardian_mobile,omitempty"`
	GuardianEmail    string     `json:"guardian_email,omitempty"`
	AnnualIncome     string     `json:"annual_income,omitempty"`
	AccountHolder    string     `json:"account_holder,omitempty"`
	AccountNumber    string     `json:"account_number,omitempty"`
	BankName         string     `json:"bank_name,omitempty"`
	IFSC             string     `json:"ifsc,omitempty"`
	AadhaarURL       string     `json:"aadhaar_url,omitempty"`
	MarksheetURL     string     `json:"marksheet_url,omitempty"`
	MigrationURL     string     `json:"migration_url,omitempty"`
	PhotoURL         string     `json:"photo_url,omitempty"`
	TCURL            string     `json:"tc_url,omitempty"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

// Dropout is a withdrawn student: the full student record plus withdrawal
// metadata. StudentID back-references the original identifier.
type Dropout struct {
	Student
	DropoutDate    time.Time `json:"dropout_date" gorm:"type:date;not null"`
	DropoutReason  string    `json:"dropout_reason,omitempty"`
	DropoutRemarks string    `json:"dropout_remarks,omitempty" gorm:"type:text"`
	StudentID      string    `json:"student_id" gorm:"index"`
}

// ToDropout builds the withdrawn-table row for this student. Every student
// field is carried over unchanged.
func (s *Student) ToDropout(date time.Time, reason, remarks string) *Dropout {
	return &Dropout{
		Student:        *s,
		DropoutDate:    date,
		DropoutReason:  reason,
		DropoutRemarks: remarks,
		StudentID:      s.ID,
	}
}

// ToStudent restores the active-table row from a dropout record, dropping
// the withdrawal metadata.
func (d *Dropout) ToStudent() *Student {
	s := d.Student
	return &s
}
