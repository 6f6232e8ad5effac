package category_service

import (
	"context"

	"github.com/google/uuid"

	"github.com/00rosa/rena-plataform/internal/dtos/category_dto"
	app_error "github.com/00rosa/rena-plataform/internal/errors"
)

type CategoryServiceContract interface {
	Create(ctx context.Context, req category_dto.CreateCategoryRequest) (*category_dto.CategoryResponse, *app_error.AppError)
	Update(ctx context.Context, id uuid.UUID, req category_dto.UpdateCategoryRequest) (*category_dto.CategoryResponse, *app_error.AppError)
	Delete(ctx context.Context, id uuid.UUID) (bool, *app_error.AppError)
	GetById(ctx context.Context, id uuid.UUID) (*category_dto.CategoryResponse, *app_error.AppError)
	GetAll(ctx context.Context) ([]category_dto.CategoryResponse, *app_error.AppError)
}
