package service

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categoryRows(t *testing.T) *sqlmock.Rows {
	t.Helper()
	return sqlmock.NewRows([]string{"id", "name", "is_protected", "created_at", "updated_at"})
}

func TestCategoryService_Create(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `categories`").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	cat, err := NewCategoryService(db).Create("Food")
	require.NoError(t, err)
	assert.Equal(t, uint(2), cat.ID)
	assert.Equal(t, "Food", cat.Name)
	assert.False(t, cat.IsProtected)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryService_Create_SanitizesName(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `categories`").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	cat, err := NewCategoryService(db).Create("  <b>Food</b>  ")
	require.NoError(t, err)
	assert.Equal(t, "Food", cat.Name)
}

func TestCategoryService_Create_EmptyName(t *testing.T) {
	db, _, cleanup := newMockDB(t)
	defer cleanup()

	_, err := NewCategoryService(db).Create("   ")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestCategoryService_Create_Duplicate(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `categories`").
		WillReturnError(&mysqldrv.MySQLError{Number: 1062, Message: "Duplicate entry 'Food' for key 'idx_categories_name'"})
	mock.ExpectRollback()

	_, err := NewCategoryService(db).Create("Food")
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryService_Create_LimitReached(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	// 非默认类别已达上限，不应再有任何写操作
	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	_, err := NewCategoryService(db).Create("Seventh")
	var le *LimitError
	require.ErrorAs(t, err, &le)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryService_Update_Protected(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(categoryRows(t).AddRow(1, "Others", true, time.Now(), time.Now()))

	_, err := NewCategoryService(db).Update(1, "Renamed")
	var pe *ProtectedEntityError
	require.ErrorAs(t, err, &pe)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryService_Update_NotFound(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(categoryRows(t))

	_, err := NewCategoryService(db).Update(99, "Ghost")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestCategoryService_Update(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(categoryRows(t).AddRow(2, "Food", false, time.Now(), time.Now()))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `categories`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	cat, err := NewCategoryService(db).Update(2, "Groceries")
	require.NoError(t, err)
	assert.Equal(t, "Groceries", cat.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryService_Delete_Cascade(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(categoryRows(t).AddRow(2, "Food", false, time.Now(), time.Now()))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `expenses`").
		WithArgs(2).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM `budgets`").
		WithArgs(2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `categories`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	deleted, err := NewCategoryService(db).Delete(2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted.Expenses)
	assert.Equal(t, int64(1), deleted.Budgets)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryService_Delete_MissingRowRollsBack(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	// 类别行未命中：前两次删除必须随事务一起回滚
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(categoryRows(t))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `expenses`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `budgets`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `categories`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := NewCategoryService(db).Delete(99)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryService_Delete_MidTransactionFailureRollsBack(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	// 支出删除成功后预算删除失败：整体回滚，不能留下半套删除
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(categoryRows(t).AddRow(2, "Food", false, time.Now(), time.Now()))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `expenses`").
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec("DELETE FROM `budgets`").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := NewCategoryService(db).Delete(2)
	var se *StorageError
	require.ErrorAs(t, err, &se)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryService_Delete_Protected(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(categoryRows(t).AddRow(1, "Others", true, time.Now(), time.Now()))

	_, err := NewCategoryService(db).Delete(1)
	var pe *ProtectedEntityError
	require.ErrorAs(t, err, &pe)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryService_Delete_MissingID(t *testing.T) {
	db, _, cleanup := newMockDB(t)
	defer cleanup()

	_, err := NewCategoryService(db).Delete(0)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestCategoryService_List(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(categoryRows(t).
			AddRow(2, "Food", false, time.Now(), time.Now()).
			AddRow(1, "Others", true, time.Now(), time.Now()))

	list, err := NewCategoryService(db).List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Food", list[0].Name)
	assert.Equal(t, "Others", list[1].Name)
}
