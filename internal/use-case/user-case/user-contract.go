package user_service

import (
	"context"

	"github.com/google/uuid"

	"github.com/00rosa/rena-plataform/internal/dtos/user_dto"
	"github.com/00rosa/rena-plataform/internal/entity"
	app_error "github.com/00rosa/rena-plataform/internal/errors"
)

type UserServiceContract interface {
	Register(ctx context.Context, req user_dto.RegisterRequest) (*user_dto.UserResponse, *app_error.AppError)
	Login(ctx context.Context, req user_dto.LoginRequest) (bool, *user_dto.AuthResponse, *app_error.AppError)
	GetById(ctx context.Context, id uuid.UUID) (*user_dto.UserResponse, *app_error.AppError)
	UpdateProfile(ctx context.Context, id uuid.UUID, req user_dto.UpdateProfileRequest) (*user_dto.UserResponse, *app_error.AppError)
	ChangePassword(ctx context.Context, id uuid.UUID, req user_dto.ChangePasswordRequest) (bool, *app_error.AppError)
	Delete(ctx context.Context, id uuid.UUID) (bool, *app_error.AppError)
}

// TokenIssuer is the hook point for session token issuance. It receives a
// user whose credentials have already been verified.
type TokenIssuer interface {
	Issue(ctx context.Context, user *entity.User) (string, error)
}
