package product_service

import (
	"context"

	"github.com/google/uuid"

	"github.com/00rosa/rena-plataform/internal/dtos/product_dto"
	"github.com/00rosa/rena-plataform/internal/entity"
	app_error "github.com/00rosa/rena-plataform/internal/errors"
)

type ProductServiceContract interface {
	Create(ctx context.Context, req product_dto.CreateProductRequest, ownerId uuid.UUID) (*product_dto.ProductResponse, *app_error.AppError)
	Update(ctx context.Context, id uuid.UUID, req product_dto.UpdateProductRequest, requesterId uuid.UUID) (*product_dto.ProductResponse, *app_error.AppError)
	Delete(ctx context.Context, id uuid.UUID, requesterId uuid.UUID) (bool, *app_error.AppError)
	ToggleStatus(ctx context.Context, id uuid.UUID, requesterId uuid.UUID, status entity.ProductStatus) (bool, *app_error.AppError)
	GetById(ctx context.Context, id uuid.UUID) (*product_dto.ProductResponse, *app_error.AppError)
	Search(ctx context.Context, term string, categoryId *uuid.UUID) ([]product_dto.ProductResponse, *app_error.AppError)
	ListByUser(ctx context.Context, userId uuid.UUID) ([]product_dto.ProductResponse, *app_error.AppError)
	ListByStatus(ctx context.Context, ownerId uuid.UUID, status entity.ProductStatus) ([]product_dto.ProductResponse, *app_error.AppError)
	ListAvailable(ctx context.Context) ([]product_dto.ProductResponse, *app_error.AppError)
	CountByUser(ctx context.Context, userId uuid.UUID) (int64, *app_error.AppError)
}
