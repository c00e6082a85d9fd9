package papers

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/config"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/database"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/models"
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// UploadPaperAPI stores one answer sheet or question paper for a student.
// Multipart form: student_id, exam_name, optional subject and exam_date,
// file.
func UploadPaperAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := strings.TrimSpace(c.FormValue("student_id"))
	examName := strings.TrimSpace(c.FormValue("exam_name"))
	if studentID == "" || examName == "" {
		return fiber.NewError(400, "Student id and exam name are required")
	}

	var examDate *time.Time
	if s := c.FormValue("exam_date"); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return fiber.NewError(400, "Invalid exam date, expected YYYY-MM-DD")
		}
		examDate = &d
	}

	if _, err := database.GetStudentByID(db, studentID); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Student not found")
		}
		return fiber.NewError(500, "Database error")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(400, "Paper file is required")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return fiber.NewError(400, "Only PDF and image files are accepted")
	}

	name := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(config.AppConfig.UploadDirPapers, name)); err != nil {
		return fiber.NewError(500, "Failed to store file")
	}

	paper := &models.ExamPaper{
		StudentID: studentID,
		Subject:   strings.TrimSpace(c.FormValue("subject")),
		ExamName:  examName,
		ExamDate:  examDate,
		FileURL:   name,
	}
	if err := database.CreateExamPaper(db, paper); err != nil {
		// The row failed, remove the orphaned file.
		os.Remove(filepath.Join(config.AppConfig.UploadDirPapers, name))
		return fiber.NewError(500, "Failed to save paper record")
	}

	return c.JSON(fiber.Map{"success": true, "paper": paper})
}

func GetPapersAPI(c *fiber.Ctx, db *sql.DB) error {
	f := database.PaperFilters{
		StudentID: c.Query("student_id"),
		ExamName:  c.Query("exam_name"),
		Subject:   c.Query("subject"),
		Search:    c.Query("search"),
	}
	papers, err := database.GetExamPapers(db, f)
	if err != nil {
		return fiber.NewError(500, "Failed to load papers")
	}
	return c.JSON(fiber.Map{"success": true, "papers": papers, "count": len(papers)})
}

func DeletePaperAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid paper id")
	}

	paper, err := database.GetExamPaperByID(db, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Paper not found")
		}
		return fiber.NewError(500, "Database error")
	}

	if err := database.DeleteExamPaper(db, id); err != nil {
		return fiber.NewError(500, "Failed to delete paper")
	}

	if err := os.Remove(filepath.Join(config.AppConfig.UploadDirPapers, paper.FileURL)); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to remove paper file %s: %v", paper.FileURL, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
