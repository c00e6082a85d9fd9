package students

import (
	"database/sql"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/database"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/models"
)

func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	f := database.StudentFilters{
		Course:     c.Query("course"),
		Branch:     c.Query("branch"),
		Department: c.Query("department"),
		Batch:      c.Query("batch"),
		Session:    c.Query("session"),
		Search:     c.Query("search"),
		Limit:      c.QueryInt("limit"),
		Offset:     c.QueryInt("offset"),
	}

	students, err := database.GetStudents(db, f)
	if err != nil {
		return fiber.NewError(500, "Failed to load students")
	}
	return c.JSON(fiber.Map{"success": true, "students": students, "count": len(students)})
}

func GetStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")
	student, err := database.GetStudentByID(db, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Student not found")
		}
		return fiber.NewError(500, "Database error")
	}
	return c.JSON(fiber.Map{"success": true, "student": student})
}

func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	s := &models.Student{}
	if err := c.BodyParser(s); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	s.ID = strings.TrimSpace(s.ID)
	s.Name = strings.TrimSpace(s.Name)
	if s.ID == "" || s.Name == "" {
		return fiber.NewError(400, "Student id and name are required")
	}

	if _, err := database.GetStudentByID(db, s.ID); err == nil {
		return fiber.NewError(400, "A student with this id already exists")
	} else if err != sql.ErrNoRows {
		return fiber.NewError(500, "Database error")
	}

	if err := database.CreateStudent(db, s); err != nil {
		return fiber.NewError(500, "Failed to create student")
	}
	return c.JSON(fiber.Map{"success": true, "student": s})
}

func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")
	s := &models.Student{}
	if err := c.BodyParser(s); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	s.ID = id
	if strings.TrimSpace(s.Name) == "" {
		return fiber.NewError(400, "Student name is required")
	}

	if err := database.UpdateStudent(db, s); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Student not found")
		}
		return fiber.NewError(500, "Failed to update student")
	}
	return c.JSON(fiber.Map{"success": true, "student": s})
}

func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")
	if err := database.DeleteStudent(db, id); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Student not found")
		}
		return fiber.NewError(500, "Failed to delete student")
	}
	return c.JSON(fiber.Map{"success": true})
}

func GetDropoutsAPI(c *fiber.Ctx, db *sql.DB) error {
	dropouts, err := database.GetDropouts(db)
	if err != nil {
		return fiber.NewError(500, "Failed to load dropouts")
	}
	return c.JSON(fiber.Map{"success": true, "dropouts": dropouts, "count": len(dropouts)})
}

// MarkDropoutAPI moves a student to the withdrawn table, preserving every
// field.
func MarkDropoutAPI(c *fiber.Ctx, db *sql.DB) error {
	type dropoutRequest struct {
		StudentID string `json:"student_id" form:"student_id"`
		Date      string `json:"dropout_date" form:"dropout_date"`
		Reason    string `json:"reason" form:"reason"`
		Remarks   string `json:"remarks" form:"remarks"`
	}
	var req dropoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if req.StudentID == "" {
		return fiber.NewError(400, "Student id is required")
	}

	date := time.Now()
	if req.Date != "" {
		var err error
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return fiber.NewError(400, "Invalid dropout date, expected YYYY-MM-DD")
		}
	}

	if err := database.MarkDropout(db, req.StudentID, date, req.Reason, req.Remarks); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Student not found")
		}
		if strings.Contains(err.Error(), "manual reconciliation") {
			return fiber.NewError(500, err.Error())
		}
		return fiber.NewError(500, "Failed to mark dropout")
	}
	return c.JSON(fiber.Map{"success": true})
}

// MarkAdmitAPI restores a withdrawn student to the active table.
func MarkAdmitAPI(c *fiber.Ctx, db *sql.DB) error {
	type admitRequest struct {
		StudentID string `json:"student_id" form:"student_id"`
	}
	var req admitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if req.StudentID == "" {
		return fiber.NewError(400, "Student id is required")
	}

	if err := database.MarkAdmit(db, req.StudentID); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Dropout record not found")
		}
		if strings.Contains(err.Error(), "manual reconciliation") {
			return fiber.NewError(500, err.Error())
		}
		return fiber.NewError(500, "Failed to readmit student")
	}
	return c.JSON(fiber.Map{"success": true})
}

// SaveRollAllocationsAPI applies manual roll number edits.
func SaveRollAllocationsAPI(c *fiber.Ctx, db *sql.DB) error {
	type saveRequest struct {
		Updates []database.RollUpdate `json:"updates"`
	}
	var req saveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if len(req.Updates) == 0 {
		return fiber.NewError(400, "No updates provided")
	}

	updated, err := database.SaveRollAllocations(db, req.Updates)
	if err != nil {
		return fiber.NewError(500, "Failed to save roll allocations")
	}
	return c.JSON(fiber.Map{"success": true, "updated": updated})
}

// AutoGenerateRollsAPI assigns sequential roll numbers to a course/batch,
// ordered by student name.
func AutoGenerateRollsAPI(c *fiber.Ctx, db *sql.DB) error {
	type generateRequest struct {
		Course string `json:"course" form:"course"`
		Batch  string `json:"batch" form:"batch"`
		Prefix string `json:"prefix" form:"prefix"`
	}
	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if req.Course == "" || req.Batch == "" {
		return fiber.NewError(400, "Course and batch are required")
	}
	if req.Prefix == "" {
		req.Prefix = "TIONS"
	}

	count, err := database.AutoGenerateRolls(db, req.Course, req.Batch, req.Prefix)
	if err != nil {
		return fiber.NewError(500, "Failed to generate roll numbers")
	}
	if count == 0 {
		return fiber.NewError(404, "No students match this course and batch")
	}
	return c.JSON(fiber.Map{"success": true, "generated": count})
}
