package category_service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/00rosa/rena-plataform/internal/dtos/category_dto"
	"github.com/00rosa/rena-plataform/internal/entity"
	app_error "github.com/00rosa/rena-plataform/internal/errors"
	"github.com/00rosa/rena-plataform/internal/repo/uow"
	"github.com/00rosa/rena-plataform/state"
)

type CategoryService struct {
	AppState *state.AppState
	Uow      uow.Factory
}

func NewCategoryService(appState *state.AppState) CategoryServiceContract {
	return &CategoryService{
		AppState: appState,
		Uow:      uow.NewFactory(appState.DB),
	}
}

func (s *CategoryService) Create(ctx context.Context, req category_dto.CreateCategoryRequest) (*category_dto.CategoryResponse, *app_error.AppError) {
	u := s.Uow.New()
	defer u.Close()

	taken, err := u.Categories().NameExists(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, app_error.Conflict("a category with that name already exists", "name")
	}

	category := &entity.Category{
		Base:        entity.Base{ID: uuid.New(), IsActive: true},
		Name:        req.Name,
		Description: req.Description,
	}

	u.Categories().Add(category)
	if _, err := u.SaveChanges(ctx); err != nil {
		return nil, err
	}

	log.Info().Str("name", category.Name).Msg("category created")
	return category_dto.FromEntity(category), nil
}

func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req category_dto.UpdateCategoryRequest) (*category_dto.CategoryResponse, *app_error.AppError) {
	u := s.Uow.New()
	defer u.Close()

	category, err := u.Categories().GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, app_error.NotFound("category not found", "id")
	}

	if req.Name != nil && *req.Name != category.Name {
		taken, err := u.Categories().NameExists(ctx, *req.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, app_error.Conflict("a category with that name already exists", "name")
		}
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = req.Description
	}

	u.Categories().Update(category)
	if _, err := u.SaveChanges(ctx); err != nil {
		return nil, err
	}

	return category_dto.FromEntity(category), nil
}

func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) (bool, *app_error.AppError) {
	u := s.Uow.New()
	defer u.Close()

	category, err := u.Categories().GetById(ctx, id)
	if err != nil {
		return false, err
	}
	if category == nil {
		return false, nil
	}

	u.Categories().Delete(category)
	if _, err := u.SaveChanges(ctx); err != nil {
		return false, err
	}

	log.Info().Str("name", category.Name).Msg("category soft-deleted")
	return true, nil
}

func (s *CategoryService) GetById(ctx context.Context, id uuid.UUID) (*category_dto.CategoryResponse, *app_error.AppError) {
	u := s.Uow.New()
	defer u.Close()

	category, err := u.Categories().GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}

	return category_dto.FromEntity(category), nil
}

func (s *CategoryService) GetAll(ctx context.Context) ([]category_dto.CategoryResponse, *app_error.AppError) {
	u := s.Uow.New()
	defer u.Close()

	categories, err := u.Categories().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]category_dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, *category_dto.FromEntity(&categories[i]))
	}
	return out, nil
}
