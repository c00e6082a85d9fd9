package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStudent() *Student {
	dob := time.Date(2004, 6, 12, 0, 0, 0, 0, time.UTC)
	adm := time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC)
	return &Student{
		ID:             "S1",
		AdmissionDate:  &adm,
		Batch:          "2022",
		Branch:         "Science",
		Course:         "BSC",
		Department:     "Physics",
		EnrollmentNo:   "EN-101",
		RegisterNumber: "REG-101",
		RollNo:         "R1",
		Session:        "2022-23",
		Name:           "A",
		Gender:         "female",
		DOB:            &dob,
		Phone:          "9900112233",
		Address:        "12 Main Rd",
		FatherName:     "B",
		MotherName:     "C",
		AccountHolder:  "A",
		AccountNumber:  "1234567890",
		BankName:       "SBI",
		IFSC:           "SBIN0001",
		PhotoURL:       "photo_s1.jpg",
		CreatedAt:      time.Date(2022, 7, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestDropoutRoundTripPreservesFields(t *testing.T) {
	original := sampleStudent()

	dropDate := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	dropout := original.ToDropout(dropDate, "relocation", "family moved")

	require.Equal(t, "S1", dropout.ID)
	require.Equal(t, "S1", dropout.StudentID)
	assert.Equal(t, dropDate, dropout.DropoutDate)
	assert.Equal(t, "relocation", dropout.DropoutReason)
	assert.Equal(t, "family moved", dropout.DropoutRemarks)

	restored := dropout.ToStudent()
	assert.Equal(t, original, restored)
	assert.Equal(t, "A", restored.Name)
	assert.Equal(t, "R1", restored.RollNo)
}

func TestToDropoutCopiesNotAliases(t *testing.T) {
	s := sampleStudent()
	d := s.ToDropout(time.Now(), "", "")

	s.Name = "changed"
	assert.Equal(t, "A", d.Student.Name)
}
