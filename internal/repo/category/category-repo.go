package category_repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/00rosa/rena-plataform/internal/entity"
	app_error "github.com/00rosa/rena-plataform/internal/errors"
)

type CategoryRepo struct {
	Session Session
}

func NewCategoryRepo(session Session) CategoryRepoContract {
	return &CategoryRepo{Session: session}
}

func (r *CategoryRepo) GetById(ctx context.Context, id uuid.UUID) (*entity.Category, *app_error.AppError) {
	var category entity.Category

	err := r.Session.Handle(ctx).
		Scopes(entity.Active).
		Preload("Products", entity.Active).
		Where("id = ?", id).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, app_error.Internal("unexpected error occur when fetch category", "db-error")
	}

	return &category, nil
}

func (r *CategoryRepo) GetAll(ctx context.Context) ([]entity.Category, *app_error.AppError) {
	var categories []entity.Category

	err := r.Session.Handle(ctx).
		Scopes(entity.Active).
		Preload("Products", entity.Active).
		Order("name asc").
		Find(&categories).Error
	if err != nil {
		return nil, app_error.Internal("unexpected error occur when list categories", "db-error")
	}

	return categories, nil
}

func (r *CategoryRepo) Add(category *entity.Category) {
	r.Session.Stage(func(tx *gorm.DB) (int64, error) {
		res := tx.Create(category)
		return res.RowsAffected, res.Error
	})
}

func (r *CategoryRepo) Update(category *entity.Category) {
	r.Session.Stage(func(tx *gorm.DB) (int64, error) {
		res := tx.Model(&entity.Category{}).Where("id = ?", category.ID).
			Select("Name", "Description", "IsActive", "UpdatedAt").
			Updates(category)
		return res.RowsAffected, res.Error
	})
}

func (r *CategoryRepo) Delete(category *entity.Category) {
	category.IsActive = false
	r.Update(category)
}

func (r *CategoryRepo) Exists(ctx context.Context, id uuid.UUID) (bool, *app_error.AppError) {
	var count int64

	err := r.Session.Handle(ctx).Model(&entity.Category{}).
		Scopes(entity.Active).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, app_error.Internal("unexpected error occur when check category", "db-count")
	}

	return count > 0, nil
}

func (r *CategoryRepo) NameExists(ctx context.Context, name string) (bool, *app_error.AppError) {
	var count int64

	err := r.Session.Handle(ctx).Model(&entity.Category{}).
		Scopes(entity.Active).
		Where("name = ?", name).
		Count(&count).Error
	if err != nil {
		return false, app_error.Internal("unexpected error occur when check category name", "db-count")
	}

	return count > 0, nil
}
