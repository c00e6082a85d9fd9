package fees

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/models"
)

func TestRecordCollectionMirrorRegistersCategoryFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// The category upsert runs before the ledger insert so "Fee Collection"
	// appears in income category listings like any manual entry.
	mock.ExpectQuery("INSERT INTO income_categories").
		WithArgs("Fee Collection").
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_active"}).AddRow(4, true))
	mock.ExpectQuery("INSERT INTO finance_transactions").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	account := &models.Account{ID: 2, AccountType: models.AccountBank}
	err = recordCollectionMirror(db, account, 750, "RCP20250601120000abcdef012345",
		"STU001", "Tuition", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordCollectionMirrorStopsWhenCategoryFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO income_categories").
		WithArgs("Fee Collection").
		WillReturnError(errors.New("connection reset"))

	account := &models.Account{ID: 2, AccountType: models.AccountBank}
	err = recordCollectionMirror(db, account, 750, "RCP20250601120000abcdef012345",
		"STU001", "Tuition", time.Now())
	require.Error(t, err)
	// No ledger row may be written without its category.
	assert.NoError(t, mock.ExpectationsWereMet())
}
