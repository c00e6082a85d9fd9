package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/models"
)

// StudentFilters represents filtering options for student listings.
type StudentFilters struct {
	Course     string
	Branch     string
	Department string
	Batch      string
	Session    string
	Search     string
	Limit      int
	Offset     int
}

// studentCols is the canonical select list for both the students and
// dropouts tables. scanStudent must stay in the same order.
const studentCols = `id, admission_date, COALESCE(batch,''), COALESCE(branch,''),
	COALESCE(course,''), COALESCE(department,''), COALESCE(enrollment_no,''),
	COALESCE(last_exam_passed,''), COALESCE(previous_school,''),
	COALESCE(register_number,''), COALESCE(registration_no,''), COALESCE(roll_no,''),
	COALESCE(session,''), COALESCE(tenth_board,''), COALESCE(tenth_percent,''),
	COALESCE(twelfth_board,''), COALESCE(twelfth_percent,''), name,
	COALESCE(gender,''), dob, COALESCE(blood_group,''), COALESCE(email,''),
	COALESCE(aadhaar,''), COALESCE(phone,''), COALESCE(address,''),
	COALESCE(caste,''), COALESCE(religion,''), COALESCE(father_name,''),
	COALESCE(father_mobile,''), COALESCE(father_occupation,''),
	COALESCE(mother_name,''), COALESCE(mother_mobile,''),
	COALESCE(guardian_name,''), COALESCE(guardian_mobile,''),
	COALESCE(guardian_email,''), COALESCE(annual_income,''),
	COALESCE(account_holder,''), COALESCE(account_number,''),
	COALESCE(bank_name,''), COALESCE(ifsc,''), COALESCE(aadhaar_url,''),
	COALESCE(marksheet_url,''), COALESCE(migration_url,''),
	COALESCE(photo_url,''), COALESCE(tc_url,''), created_at`

// studentInsertCols matches the order of studentInsertArgs.
const studentInsertCols = `id, admission_date, batch, branch, course, department,
	enrollment_no, last_exam_passed, previous_school, register_number,
	registration_no, roll_no, session, tenth_board, tenth_percent,
	twelfth_board, twelfth_percent, name, gender, dob, blood_group, email,
	aadhaar, phone, address, caste, religion, father_name, father_mobile,
	father_occupation, mother_name, mother_mobile, guardian_name,
	guardian_mobile, guardian_email, annual_income, account_holder,
	account_number, bank_name, ifsc, aadhaar_url, marksheet_url,
	migration_url, photo_url, tc_url, created_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanStudent is the single row-to-record mapping for student rows.
func scanStudent(r rowScanner) (*models.Student, error) {
	s := &models.Student{}
	err := r.Scan(
		&s.ID, &s.AdmissionDate, &s.Batch, &s.Branch,
		&s.Course, &s.Department, &s.EnrollmentNo,
		&s.LastExamPassed, &s.PreviousSchool,
		&s.RegisterNumber, &s.RegistrationNo, &s.RollNo,
		&s.Session, &s.TenthBoard, &s.TenthPercent,
		&s.TwelfthBoard, &s.TwelfthPercent, &s.Name,
		&s.Gender, &s.DOB, &s.BloodGroup, &s.Email,
		&s.Aadhaar, &s.Phone, &s.Address,
		&s.Caste, &s.Religion, &s.FatherName,
		&s.FatherMobile, &s.FatherOccupation,
		&s.MotherName, &s.MotherMobile,
		&s.GuardianName, &s.GuardianMobile,
		&s.GuardianEmail, &s.AnnualIncome,
		&s.AccountHolder, &s.AccountNumber,
		&s.BankName, &s.IFSC, &s.AadhaarURL,
		&s.MarksheetURL, &s.MigrationURL,
		&s.PhotoURL, &s.TCURL, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func studentInsertArgs(s *models.Student) []interface{} {
	return []interface{}{
		s.ID, s.AdmissionDate, s.Batch, s.Branch, s.Course, s.Department,
		s.EnrollmentNo, s.LastExamPassed, s.PreviousSchool, s.RegisterNumber,
		s.RegistrationNo, s.RollNo, s.Session, s.TenthBoard, s.TenthPercent,
		s.TwelfthBoard, s.TwelfthPercent, s.Name, s.Gender, s.DOB,
		s.BloodGroup, s.Email, s.Aadhaar, s.Phone, s.Address, s.Caste,
		s.Religion, s.FatherName, s.FatherMobile, s.FatherOccupation,
		s.MotherName, s.MotherMobile, s.GuardianName, s.GuardianMobile,
		s.GuardianEmail, s.AnnualIncome, s.AccountHolder, s.AccountNumber,
		s.BankName, s.IFSC, s.AadhaarURL, s.MarksheetURL, s.MigrationURL,
		s.PhotoURL, s.TCURL, s.CreatedAt,
	}
}

func placeholders(n int) string {
	out := ""
	for i := 1; i <= n; i++ {
		if i > 1 {
			out += ", "
		}
		out += fmt.Sprintf("$%d", i)
	}
	return out
}

// GetStudents returns active students matching the structural filters.
func GetStudents(db *sql.DB, f StudentFilters) ([]*models.Student, error) {
	query := `SELECT ` + studentCols + ` FROM students WHERE 1=1`
	var args []interface{}

	add := func(col, val string) {
		if val != "" {
			args = append(args, val)
			query += fmt.Sprintf(" AND %s = $%d", col, len(args))
		}
	}
	add("course", f.Course)
	add("branch", f.Branch)
	add("department", f.Department)
	add("batch", f.Batch)
	add("session", f.Session)

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (id ILIKE $%d OR name ILIKE $%d OR register_number ILIKE $%d OR roll_no ILIKE $%d)", n, n, n, n)
	}

	query += " ORDER BY name ASC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	row := db.QueryRow(`SELECT `+studentCols+` FROM students WHERE id = $1`, id)
	return scanStudent(row)
}

func CreateStudent(db *sql.DB, s *models.Student) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	query := fmt.Sprintf(`INSERT INTO students (%s) VALUES (%s)`,
		studentInsertCols, placeholders(46))
	_, err := db.Exec(query, studentInsertArgs(s)...)
	return err
}

func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students SET
		admission_date=$2, batch=$3, branch=$4, course=$5, department=$6,
		enrollment_no=$7, last_exam_passed=$8, previous_school=$9,
		register_number=$10, registration_no=$11, roll_no=$12, session=$13,
		tenth_board=$14, tenth_percent=$15, twelfth_board=$16, twelfth_percent=$17,
		name=$18, gender=$19, dob=$20, blood_group=$21, email=$22, aadhaar=$23,
		phone=$24, address=$25, caste=$26, religion=$27, father_name=$28,
		father_mobile=$29, father_occupation=$30, mother_name=$31,
		mother_mobile=$32, guardian_name=$33, guardian_mobile=$34,
		guardian_email=$35, annual_income=$36, account_holder=$37,
		account_number=$38, bank_name=$39, ifsc=$40, aadhaar_url=$41,
		marksheet_url=$42, migration_url=$43, photo_url=$44, tc_url=$45
		WHERE id=$1`
	args := studentInsertArgs(s)
	res, err := db.Exec(query, args[:45]...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

func DeleteStudent(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

// GetDropouts returns all withdrawn students, most recent first.
func GetDropouts(db *sql.DB) ([]*models.Dropout, error) {
	query := `SELECT dropout_date, COALESCE(dropout_reason,''),
		COALESCE(dropout_remarks,''), COALESCE(student_id,''), ` + studentCols + `
		FROM dropouts ORDER BY dropout_date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dropouts []*models.Dropout
	for rows.Next() {
		d := &models.Dropout{}
		s := &d.Student
		err := rows.Scan(
			&d.DropoutDate, &d.DropoutReason, &d.DropoutRemarks, &d.StudentID,
			&s.ID, &s.AdmissionDate, &s.Batch, &s.Branch,
			&s.Course, &s.Department, &s.EnrollmentNo,
			&s.LastExamPassed, &s.PreviousSchool,
			&s.RegisterNumber, &s.RegistrationNo, &s.RollNo,
			&s.Session, &s.TenthBoard, &s.TenthPercent,
			&s.TwelfthBoard, &s.TwelfthPercent, &s.Name,
			&s.Gender, &s.DOB, &s.BloodGroup, &s.Email,
			&s.Aadhaar, &s.Phone, &s.Address,
			&s.Caste, &s.Religion, &s.FatherName,
			&s.FatherMobile, &s.FatherOccupation,
			&s.MotherName, &s.MotherMobile,
			&s.GuardianName, &s.GuardianMobile,
			&s.GuardianEmail, &s.AnnualIncome,
			&s.AccountHolder, &s.AccountNumber,
			&s.BankName, &s.IFSC, &s.AadhaarURL,
			&s.MarksheetURL, &s.MigrationURL,
			&s.PhotoURL, &s.TCURL, &s.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		dropouts = append(dropouts, d)
	}
	return dropouts, rows.Err()
}

// MarkDropout moves one student row into the dropouts table. Insert and
// delete run in a single transaction so the student is never in both tables
// or neither after the call returns.
func MarkDropout(db *sql.DB, studentID string, date time.Time, reason, remarks string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	row := tx.QueryRow(`SELECT `+studentCols+` FROM students WHERE id = $1 FOR UPDATE`, studentID)
	student, err := scanStudent(row)
	if err != nil {
		return err
	}

	d := student.ToDropout(date, reason, remarks)

	query := fmt.Sprintf(`INSERT INTO dropouts
		(dropout_date, dropout_reason, dropout_remarks, student_id, %s)
		VALUES (%s)`, studentInsertCols, placeholders(50))
	args := append([]interface{}{d.DropoutDate, d.DropoutReason, d.DropoutRemarks, d.StudentID},
		studentInsertArgs(&d.Student)...)
	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to insert dropout: %v", err)
	}

	if _, err := tx.Exec(`DELETE FROM students WHERE id = $1`, studentID); err != nil {
		return fmt.Errorf("failed to remove active row, manual reconciliation needed: %v", err)
	}

	return tx.Commit()
}

// MarkAdmit is the reverse migration: the dropout row becomes an active
// student again with the same identifier.
func MarkAdmit(db *sql.DB, studentID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	row := tx.QueryRow(`SELECT `+studentCols+` FROM dropouts WHERE id = $1 FOR UPDATE`, studentID)
	student, err := scanStudent(row)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`INSERT INTO students (%s) VALUES (%s)`,
		studentInsertCols, placeholders(46))
	if _, err := tx.Exec(query, studentInsertArgs(student)...); err != nil {
		return fmt.Errorf("failed to restore student: %v", err)
	}

	if _, err := tx.Exec(`DELETE FROM dropouts WHERE id = $1`, studentID); err != nil {
		return fmt.Errorf("failed to remove dropout row, manual reconciliation needed: %v", err)
	}

	return tx.Commit()
}

// RollUpdate is one manual roll/enrollment assignment.
type RollUpdate struct {
	StudentID      string `json:"student_id"`
	RollNo         string `json:"roll_no"`
	EnrollmentNo   string `json:"enrollment_no"`
	RegisterNumber string `json:"register_number"`
}

// SaveRollAllocations applies manual roll number edits in one transaction.
func SaveRollAllocations(db *sql.DB, updates []RollUpdate) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	updated := 0
	for _, u := range updates {
		if u.StudentID == "" {
			continue
		}
		res, err := tx.Exec(`UPDATE students SET roll_no=$1, enrollment_no=$2, register_number=$3 WHERE id=$4`,
			u.RollNo, u.EnrollmentNo, u.RegisterNumber, u.StudentID)
		if err != nil {
			return 0, err
		}
		if n, _ := res.RowsAffected(); n > 0 {
			updated++
		}
	}

	return updated, tx.Commit()
}

// AutoGenerateRolls assigns sequential roll numbers (prefix + counter) to
// every student of a course/batch, ordered by name.
func AutoGenerateRolls(db *sql.DB, course, batch, prefix string) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	rows, err := tx.Query(`SELECT id FROM students WHERE course=$1 AND batch=$2 ORDER BY name ASC`, course, batch)
	if err != nil {
		return 0, err
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, err
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	for i, id := range ids {
		roll := GenerateRollNumber(prefix, i+1)
		if _, err := tx.Exec(`UPDATE students SET roll_no=$1, enrollment_no=$1, register_number=$1 WHERE id=$2`, roll, id); err != nil {
			return 0, err
		}
	}

	return len(ids), tx.Commit()
}

// GenerateRollNumber builds one sequential roll value.
func GenerateRollNumber(prefix string, n int) string {
	return fmt.Sprintf("%s%d", prefix, n)
}
