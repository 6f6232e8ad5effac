package uow

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

func stageExec(u *UnitOfWork, sql string, args ...any) {
	u.Stage(func(tx *gorm.DB) (int64, error) {
		res := tx.Exec(sql, args...)
		return res.RowsAffected, res.Error
	})
}

func TestSaveChanges_FlushesStageAtomically(t *testing.T) {
	db, mock := setupMockDB(t)
	u := New(db)
	ctx := context.Background()

	stageExec(u, "UPDATE products SET status = ? WHERE id = ?", "sold", "p1")
	stageExec(u, "UPDATE products SET status = ? WHERE id = ?", "sold", "p2")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET status")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET status")).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	affected, err := u.SaveChanges(ctx)

	assert.Nil(t, err)
	assert.Equal(t, int64(3), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveChanges_EmptyStageIsANoOpCommit(t *testing.T) {
	db, mock := setupMockDB(t)
	u := New(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	affected, err := u.SaveChanges(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, int64(0), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveChanges_FailureRollsBackAndKeepsStage(t *testing.T) {
	db, mock := setupMockDB(t)
	u := New(db)
	ctx := context.Background()

	stageExec(u, "UPDATE products SET status = ? WHERE id = ?", "sold", "p1")
	stageExec(u, "UPDATE products SET status = ? WHERE id = ?", "sold", "p2")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET status")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET status")).
		WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	_, err := u.SaveChanges(ctx)
	assert.NotNil(t, err)

	// The stage survives a failed flush, so a retry replays both writes.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET status")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET status")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	affected, err := u.SaveChanges(ctx)
	assert.Nil(t, err)
	assert.Equal(t, int64(2), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExplicitScope_SaveChangesDoesNotCommit(t *testing.T) {
	db, mock := setupMockDB(t)
	u := New(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE product_images SET is_active")).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	assert.Nil(t, u.BeginTransaction(ctx))

	stageExec(u, "UPDATE product_images SET is_active = ? WHERE product_id = ?", false, "p1")
	affected, err := u.SaveChanges(ctx)
	assert.Nil(t, err)
	assert.Equal(t, int64(2), affected)

	// Nothing committed yet; the commit above is only now consumed.
	assert.Nil(t, u.CommitTransaction(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitTransaction_FlushesRemainingStage(t *testing.T) {
	db, mock := setupMockDB(t)
	u := New(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET last_login")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.Nil(t, u.BeginTransaction(ctx))
	stageExec(u, "UPDATE users SET last_login = now() WHERE id = ?", "u1")

	assert.Nil(t, u.CommitTransaction(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBeginTransaction_RejectsNestedScope(t *testing.T) {
	db, mock := setupMockDB(t)
	u := New(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Nil(t, u.BeginTransaction(ctx))
	assert.NotNil(t, u.BeginTransaction(ctx))

	assert.Nil(t, u.RollbackTransaction())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitTransaction_WithoutOpenScope(t *testing.T) {
	db, _ := setupMockDB(t)
	u := New(db)

	assert.NotNil(t, u.CommitTransaction(context.Background()))
}

func TestClose_RollsBackOpenScope(t *testing.T) {
	db, mock := setupMockDB(t)
	u := New(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Nil(t, u.BeginTransaction(ctx))
	stageExec(u, "UPDATE users SET name = ? WHERE id = ?", "x", "u1")

	u.Close()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRollbackTransaction_DropsStage(t *testing.T) {
	db, mock := setupMockDB(t)
	u := New(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Nil(t, u.BeginTransaction(ctx))
	stageExec(u, "UPDATE users SET name = ? WHERE id = ?", "x", "u1")
	assert.Nil(t, u.RollbackTransaction())

	// The dropped stage must not replay on the next save.
	mock.ExpectBegin()
	mock.ExpectCommit()

	affected, err := u.SaveChanges(ctx)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
