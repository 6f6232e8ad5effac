package category_repo

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/00rosa/rena-plataform/internal/entity"
)

type fakeSession struct {
	db     *gorm.DB
	staged []func(tx *gorm.DB) (int64, error)
}

func (s *fakeSession) Handle(ctx context.Context) *gorm.DB { return s.db.WithContext(ctx) }

func (s *fakeSession) Stage(fn func(tx *gorm.DB) (int64, error)) {
	s.staged = append(s.staged, fn)
}

func (s *fakeSession) flush(t *testing.T) int64 {
	t.Helper()
	var affected int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, fn := range s.staged {
			n, err := fn(tx)
			if err != nil {
				return err
			}
			affected += n
		}
		return nil
	})
	assert.NoError(t, err)
	s.staged = nil
	return affected
}

func newRepo(t *testing.T) (CategoryRepoContract, *fakeSession, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	session := &fakeSession{db: gormDB}
	return NewCategoryRepo(session), session, mock
}

func TestNameExists_IgnoresSoftDeletedRows(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "categories" WHERE is_active = \$1 AND name = \$2`).
		WithArgs(true, "Shoes").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	taken, err := repo.NameExists(context.Background(), "Shoes")

	assert.Nil(t, err)
	assert.False(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetById_NotFoundIsNil(t *testing.T) {
	repo, _, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "categories" WHERE is_active = \$1 AND id = \$2`).
		WithArgs(true, id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	category, err := repo.GetById(context.Background(), id)

	assert.Nil(t, err)
	assert.Nil(t, category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAll_OnlyActiveProductsPreloaded(t *testing.T) {
	repo, _, mock := newRepo(t)
	mock.MatchExpectationsInOrder(false)

	categoryId := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "categories" WHERE is_active = \$1 ORDER BY name asc`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_active"}).AddRow(categoryId, "Shoes", true))
	mock.ExpectQuery(`SELECT (.+) FROM "products" WHERE is_active = \$1 AND "products"."category_id" = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "category_id"}).
			AddRow(uuid.New(), "Leather Boots", categoryId))

	categories, err := repo.GetAll(context.Background())

	assert.Nil(t, err)
	assert.Len(t, categories, 1)
	assert.Len(t, categories[0].Products, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_StagesSoftDeleteUpdate(t *testing.T) {
	repo, session, mock := newRepo(t)

	category := &entity.Category{
		Base: entity.Base{ID: uuid.New(), IsActive: true},
		Name: "Shoes",
	}

	repo.Delete(category)
	assert.False(t, category.IsActive)
	// Nothing hits the store before the flush.
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "categories" SET (.+) WHERE id = \$`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	affected := session.flush(t)

	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
