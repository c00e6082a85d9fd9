package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkAssignFeesInsertsEveryStudent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Three listed students, one of them twice: four obligations, no
	// silent skipping.
	students := []string{"STU001", "STU002", "STU001", "STU003"}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT amount FROM fee_master").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"amount"}).AddRow(1500.0))
	for range students {
		mock.ExpectExec("INSERT INTO assigned_fees").
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	created, err := BulkAssignFees(db, students, 7, nil)
	require.NoError(t, err)
	assert.Equal(t, len(students), created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkAssignFeesRollsBackOnMissingMaster(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT amount FROM fee_master").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"amount"}))
	mock.ExpectRollback()

	_, err = BulkAssignFees(db, []string{"STU001"}, 99, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fee master 99 not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func assignedFeeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "student_id", "fee_master_id", "assigned_on", "due_date",
		"amount", "status", "student_name", "head_name", "type_name", "paid_sum",
	})
}

func TestGetAssignedFeesKeepsRowsOfWithdrawnStudents(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	assigned := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	// STU002 has moved to the dropouts table, so the student join yields
	// an empty name. The obligation itself must still come back.
	mock.ExpectQuery("LEFT JOIN students s ON s.id = af.student_id").
		WillReturnRows(assignedFeeRows().
			AddRow(1, "STU001", 7, assigned, nil, 1500.0, "Not Paid", "Asha Rao", "Tuition", "Annual", 0.0).
			AddRow(2, "STU002", 7, assigned, nil, 1500.0, "Partially Paid", "", "Tuition", "Annual", 500.0))

	fees, err := GetAssignedFees(db, AssignedFeeFilters{})
	require.NoError(t, err)
	require.Len(t, fees, 2)
	assert.Equal(t, "Asha Rao", fees[0].StudentName)
	assert.Equal(t, "STU002", fees[1].StudentID)
	assert.Empty(t, fees[1].StudentName)
	assert.Equal(t, 500.0, fees[1].PaidSum)
	assert.NoError(t, mock.ExpectationsWereMet())
}
