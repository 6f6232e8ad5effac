package product_repo

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

// ProductRepoContract is a pure data accessor. Every read returns fully
// loaded aggregates: Category, User and Images ordered by sort_order, so the
// service layer never needs a second round-trip. Absence is (nil, nil).
type ProductRepoContract interface {
	GetById(ctx context.Context, id uuid.UUID) (*entity.Product, *app_error.AppError)
	GetAll(ctx context.Context) ([]entity.Product, *app_error.AppError)
	GetByUserId(ctx context.Context, userId uuid.UUID) ([]entity.Product, *app_error.AppError)
	GetByCategoryId(ctx context.Context, categoryId uuid.UUID) ([]entity.Product, *app_error.AppError)
	GetByUserAndStatus(ctx context.Context, userId uuid.UUID, status entity.ProductStatus) ([]entity.Product, *app_error.AppError)
	CountByUserId(ctx context.Context, userId uuid.UUID) (int64, *app_error.AppError)
	Search(ctx context.Context, term string) ([]entity.Product, *app_error.AppError)
	GetAvailable(ctx context.Context) ([]entity.Product, *app_error.AppError)
	Add(product *entity.Product)
	Update(product *entity.Product)
	ReplaceImages(productId uuid.UUID, images []entity.ProductImage)
	Delete(product *entity.Product)
	Exists(ctx context.Context, id uuid.UUID) (bool, *app_error.AppError)
}
