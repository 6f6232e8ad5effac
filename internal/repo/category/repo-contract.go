package category_repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/00rosa/rena-plataform/internal/entity"
	app_error "github.com/00rosa/rena-plataform/internal/errors"
)

// Session is the slice of the unit of work a repository needs: a handle for
// reads and a stage for writes. Staged mutations run only when the unit of
// work commits.
type Session interface {
	Handle(ctx context.Context) *gorm.DB
	Stage(fn func(tx *gorm.DB) (int64, error))
}

// CategoryRepoContract is a pure data accessor. Absence is (nil, nil), never
// an error; business rules live in the service layer.
type CategoryRepoContract interface {
	GetById(ctx context.Context, id uuid.UUID) (*entity.Category, *app_error.AppError)
	GetAll(ctx context.Context) ([]entity.Category, *app_error.AppError)
	Add(category *entity.Category)
	Update(category *entity.Category)
	Delete(category *entity.Category)
	Exists(ctx context.Context, id uuid.UUID) (bool, *app_error.AppError)
	NameExists(ctx context.Context, name string) (bool, *app_error.AppError)
}
