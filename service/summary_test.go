package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryService_Month(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT c\\.id AS category_id").
		WithArgs("2024-03", "2024-03").
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "category_name", "budget", "spent"}).
			AddRow(2, "Food", 300.0, 180.5).
			AddRow(1, "Others", 0.0, 20.0))

	summary, err := NewSummaryService(db).Month("2024-03")
	require.NoError(t, err)
	assert.Equal(t, "2024-03", summary.Month)
	require.Len(t, summary.Categories, 2)
	assert.Equal(t, "Food", summary.Categories[0].CategoryName)
	assert.Equal(t, 300.0, summary.TotalBudget)
	assert.Equal(t, 200.5, summary.TotalSpent)
}

func TestSummaryService_Month_Invalid(t *testing.T) {
	db, _, cleanup := newMockDB(t)
	defer cleanup()

	_, err := NewSummaryService(db).Month("2024-13")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestSummaryService_Month_NoData(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT c\\.id AS category_id").
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "category_name", "budget", "spent"}))

	summary, err := NewSummaryService(db).Month("2024-03")
	require.NoError(t, err)
	assert.NotNil(t, summary.Categories)
	assert.Empty(t, summary.Categories)
	assert.Equal(t, 0.0, summary.TotalBudget)
	assert.Equal(t, 0.0, summary.TotalSpent)
}
