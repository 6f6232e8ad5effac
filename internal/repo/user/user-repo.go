package user_repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/00rosa/rena-plataform/internal/entity"
	app_error "github.com/00rosa/rena-plataform/internal/errors"
)

type UserRepo struct {
	Session Session
}

func NewUserRepo(session Session) UserRepoContract {
	return &UserRepo{Session: session}
}

func (r *UserRepo) GetById(ctx context.Context, id uuid.UUID) (*entity.User, *app_error.AppError) {
	var user entity.User

	err := r.Session.Handle(ctx).
		Scopes(entity.Active).
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, app_error.Internal("unexpected error occur when fetch user", "db-error")
	}

	return &user, nil
}

func (r *UserRepo) GetAll(ctx context.Context) ([]entity.User, *app_error.AppError) {
	var users []entity.User

	err := r.Session.Handle(ctx).
		Scopes(entity.Active).
		Order("name asc").
		Find(&users).Error
	if err != nil {
		return nil, app_error.Internal("unexpected error occur when list users", "db-error")
	}

	return users, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, *app_error.AppError) {
	var user entity.User

	err := r.Session.Handle(ctx).
		Scopes(entity.Active).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, app_error.Internal("unexpected error occur when fetch user by email", "db-error")
	}

	return &user, nil
}

func (r *UserRepo) Add(user *entity.User) {
	r.Session.Stage(func(tx *gorm.DB) (int64, error) {
		res := tx.Create(user)
		return res.RowsAffected, res.Error
	})
}

func (r *UserRepo) Update(user *entity.User) {
	r.Session.Stage(func(tx *gorm.DB) (int64, error) {
		res := tx.Model(&entity.User{}).Where("id = ?", user.ID).
			Select("Email", "PasswordHash", "Name", "Phone", "AvatarUrl", "LastLogin", "IsActive", "UpdatedAt").
			Updates(user)
		return res.RowsAffected, res.Error
	})
}

func (r *UserRepo) Delete(user *entity.User) {
	user.IsActive = false
	r.Update(user)
}

func (r *UserRepo) Exists(ctx context.Context, id uuid.UUID) (bool, *app_error.AppError) {
	var count int64

	err := r.Session.Handle(ctx).Model(&entity.User{}).
		Scopes(entity.Active).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, app_error.Internal("unexpected error occur when check user", "db-count")
	}

	return count > 0, nil
}

func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, *app_error.AppError) {
	var count int64

	err := r.Session.Handle(ctx).Model(&entity.User{}).
		Scopes(entity.Active).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, app_error.Internal("unexpected error occur when check email", "db-count")
	}

	return count > 0, nil
}
