package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ddlFor(t *testing.T, table string) string {
	t.Helper()
	for _, q := range migrationTables {
		if strings.Contains(q, "CREATE TABLE IF NOT EXISTS "+table+" (") {
			return q
		}
	}
	t.Fatalf("no CREATE TABLE statement for %s", table)
	return ""
}

func TestAssignedFeesHaveNoStudentForeignKey(t *testing.T) {
	// Dropping a student moves the row to the dropouts table; a foreign key
	// on assigned_fees.student_id would make that delete fail and erase fee
	// history on withdrawal.
	ddl := ddlFor(t, "assigned_fees")

	assert.Contains(t, ddl, "student_id VARCHAR(100) NOT NULL")
	assert.NotContains(t, ddl, "REFERENCES students")

	var dropped bool
	for _, q := range migrationAlters {
		if strings.Contains(q, "DROP CONSTRAINT IF EXISTS assigned_fees_student_id_fkey") {
			dropped = true
		}
	}
	assert.True(t, dropped, "existing databases must shed the old constraint")
}

func TestFinanceTransactionsCarryInsertionSequence(t *testing.T) {
	ddl := ddlFor(t, "finance_transactions")
	assert.Contains(t, ddl, "seq BIGSERIAL")

	var added bool
	for _, q := range migrationAlters {
		if strings.Contains(q, "ADD COLUMN IF NOT EXISTS seq BIGSERIAL") {
			added = true
		}
	}
	assert.True(t, added, "existing databases must gain the seq column")
}

func TestMigrationIndexesCoverHotPaths(t *testing.T) {
	joined := strings.Join(migrationIndexes, "\n")
	require.NotEmpty(t, migrationIndexes)
	assert.Contains(t, joined, "finance_transactions(account_id, tx_date)")
	assert.Contains(t, joined, "assigned_fees(student_id)")
	assert.Contains(t, joined, "fee_payments(assigned_fee_id)")
}
