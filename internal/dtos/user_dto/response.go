package user_dto

import (
	"time"

	"github.com/00rosa/rena-plataform/internal/entity"
	"github.com/google/uuid"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Phone     *string    `json:"phone,omitempty"`
	AvatarUrl *string    `json:"avatar_url,omitempty"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type AuthResponse struct {
	User  *UserResponse `json:"user,omitempty"`
	Token string        `json:"token,omitempty"`
}

func FromEntity(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		AvatarUrl: u.AvatarUrl,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}
