package database

import (
	"database/sql"
	"fmt"

	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/models"
)

const paperCols = `p.id, p.student_id, COALESCE(p.subject,''), p.exam_name,
	p.exam_date, p.file_url, p.uploaded_at,
	COALESCE(s.name,''), COALESCE(s.register_number,''), COALESCE(s.roll_no,'')`

func scanPaper(r rowScanner) (*models.ExamPaper, error) {
	p := &models.ExamPaper{}
	err := r.Scan(&p.ID, &p.StudentID, &p.Subject, &p.ExamName,
		&p.ExamDate, &p.FileURL, &p.UploadedAt,
		&p.StudentName, &p.RegisterNumber, &p.RollNo)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// PaperFilters narrows the archive search. Search matches the student id,
// name, register number and roll number.
type PaperFilters struct {
	StudentID string
	ExamName  string
	Subject   string
	Search    string
}

// Papers may outlive the student row (dropouts keep their archive), so the
// student join is LEFT.
func GetExamPapers(db *sql.DB, f PaperFilters) ([]*models.ExamPaper, error) {
	query := `SELECT ` + paperCols + ` FROM exam_papers p
		LEFT JOIN students s ON s.id = p.student_id
		WHERE 1=1`
	var args []interface{}

	if f.StudentID != "" {
		args = append(args, f.StudentID)
		query += fmt.Sprintf(" AND p.student_id = $%d", len(args))
	}
	if f.ExamName != "" {
		args = append(args, f.ExamName)
		query += fmt.Sprintf(" AND p.exam_name = $%d", len(args))
	}
	if f.Subject != "" {
		args = append(args, f.Subject)
		query += fmt.Sprintf(" AND p.subject = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (p.student_id ILIKE $%d OR s.name ILIKE $%d OR s.register_number ILIKE $%d OR s.roll_no ILIKE $%d)", n, n, n, n)
	}

	query += ` ORDER BY p.uploaded_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var papers []*models.ExamPaper
	for rows.Next() {
		p, err := scanPaper(rows)
		if err != nil {
			return nil, err
		}
		papers = append(papers, p)
	}
	return papers, rows.Err()
}

func GetExamPaperByID(db *sql.DB, id int) (*models.ExamPaper, error) {
	row := db.QueryRow(`SELECT `+paperCols+` FROM exam_papers p
		LEFT JOIN students s ON s.id = p.student_id
		WHERE p.id = $1`, id)
	return scanPaper(row)
}

func CreateExamPaper(db *sql.DB, p *models.ExamPaper) error {
	return db.QueryRow(`INSERT INTO exam_papers
		(student_id, subject, exam_name, exam_date, file_url)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, uploaded_at`,
		p.StudentID, p.Subject, p.ExamName, p.ExamDate, p.FileURL).
		Scan(&p.ID, &p.UploadedAt)
}

func DeleteExamPaper(db *sql.DB, id int) error {
	res, err := db.Exec(`DELETE FROM exam_papers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}
