package user_service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/00rosa/rena-plataform/internal/dtos/user_dto"
	"github.com/00rosa/rena-plataform/internal/entity"
	app_error "github.com/00rosa/rena-plataform/internal/errors"
	"github.com/00rosa/rena-plataform/internal/repo/uow"
	"github.com/00rosa/rena-plataform/internal/utils"
	"github.com/00rosa/rena-plataform/state"
)

type UserService struct {
	AppState *state.AppState
	Uow      uow.Factory
	Tokens   TokenIssuer
}

func NewUserService(appState *state.AppState) UserServiceContract {
	return &UserService{
		AppState: appState,
		Uow:      uow.NewFactory(appState.DB),
		Tokens:   NewJwtTokenIssuer(appState.JwtSecret, appState.Redis),
	}
}

func (s *UserService) Register(ctx context.Context, req user_dto.RegisterRequest) (*user_dto.UserResponse, *app_error.AppError) {
	u := s.Uow.New()
	defer u.Close()

	taken, err := u.Users().EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, app_error.Conflict("email already registered", "email")
	}

	hashed, hashErr := utils.GenerateHash(req.Password)
	if hashErr != nil {
		return nil, app_error.Internal("failed to hash password", "password")
	}

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), IsActive: true},
		Email:        req.Email,
		PasswordHash: hashed,
		Name:         req.Name,
		Phone:        req.Phone,
	}

	u.Users().Add(user)
	if _, err := u.SaveChanges(ctx); err != nil {
		return nil, err
	}

	log.Info().Str("email", user.Email).Msg("user registered")
	return user_dto.FromEntity(user), nil
}

// Login returns failure as a value: (false, nil, nil) covers both an unknown
// email and a wrong password, and leaves LastLogin untouched.
func (s *UserService) Login(ctx context.Context, req user_dto.LoginRequest) (bool, *user_dto.AuthResponse, *app_error.AppError) {
	u := s.Uow.New()
	defer u.Close()

	user, err := u.Users().GetByEmail(ctx, req.Email)
	if err != nil {
		return false, nil, err
	}
	if user == nil {
		return false, nil, nil
	}

	match, verifyErr := utils.VerifyHash(user.PasswordHash, req.Password)
	if verifyErr != nil {
		return false, nil, app_error.Internal("failed to verify password", "password")
	}
	if !match {
		return false, nil, nil
	}

	now := time.Now()
	user.LastLogin = &now
	u.Users().Update(user)
	if _, err := u.SaveChanges(ctx); err != nil {
		return false, nil, err
	}

	token, issueErr := s.Tokens.Issue(ctx, user)
	if issueErr != nil {
		return false, nil, app_error.Internal("failed to issue session token", "token")
	}

	return true, &user_dto.AuthResponse{
		User:  user_dto.FromEntity(user),
		Token: token,
	}, nil
}

func (s *UserService) GetById(ctx context.Context, id uuid.UUID) (*user_dto.UserResponse, *app_error.AppError) {
	u := s.Uow.New()
	defer u.Close()

	user, err := u.Users().GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	return user_dto.FromEntity(user), nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req user_dto.UpdateProfileRequest) (*user_dto.UserResponse, *app_error.AppError) {
	u := s.Uow.New()
	defer u.Close()

	user, err := u.Users().GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, app_error.NotFound("user not found", "id")
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.AvatarUrl != nil {
		user.AvatarUrl = req.AvatarUrl
	}

	u.Users().Update(user)
	if _, err := u.SaveChanges(ctx); err != nil {
		return nil, err
	}

	return user_dto.FromEntity(user), nil
}

func (s *UserService) ChangePassword(ctx context.Context, id uuid.UUID, req user_dto.ChangePasswordRequest) (bool, *app_error.AppError) {
	u := s.Uow.New()
	defer u.Close()

	user, err := u.Users().GetById(ctx, id)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}

	match, verifyErr := utils.VerifyHash(user.PasswordHash, req.CurrentPassword)
	if verifyErr != nil {
		return false, app_error.Internal("failed to verify password", "password")
	}
	if !match {
		return false, nil
	}

	hashed, hashErr := utils.GenerateHash(req.NewPassword)
	if hashErr != nil {
		return false, app_error.Internal("failed to hash password", "password")
	}

	user.PasswordHash = hashed
	u.Users().Update(user)
	if _, err := u.SaveChanges(ctx); err != nil {
		return false, err
	}

	log.Info().Str("id", id.String()).Msg("password changed")
	return true, nil
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) (bool, *app_error.AppError) {
	u := s.Uow.New()
	defer u.Close()

	user, err := u.Users().GetById(ctx, id)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}

	u.Users().Delete(user)
	if _, err := u.SaveChanges(ctx); err != nil {
		return false, err
	}

	log.Info().Str("id", id.String()).Msg("user soft-deleted")
	return true, nil
}
