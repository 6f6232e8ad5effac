package user_repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/00rosa/rena-plataform/internal/entity"
	app_error "github.com/00rosa/rena-plataform/internal/errors"
)

// Session is the slice of the unit of work a repository needs: a handle for
// reads and a stage for writes.
type Session interface {
	Handle(ctx context.Context) *gorm.DB
	Stage(fn func(tx *gorm.DB) (int64, error))
}

// UserRepoContract is a pure data accessor. Absence is (nil, nil), never an
// error.
type UserRepoContract interface {
	GetById(ctx context.Context, id uuid.UUID) (*entity.User, *app_error.AppError)
	GetAll(ctx context.Context) ([]entity.User, *app_error.AppError)
	GetByEmail(ctx context.Context, email string) (*entity.User, *app_error.AppError)
	Add(user *entity.User)
	Update(user *entity.User)
	Delete(user *entity.User)
	Exists(ctx context.Context, id uuid.UUID) (bool, *app_error.AppError)
	EmailExists(ctx context.Context, email string) (bool, *app_error.AppError)
}
