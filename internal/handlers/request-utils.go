package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	app_error "github.com/00rosa/rena-plataform/internal/errors"
	"github.com/00rosa/rena-plataform/internal/middleware"
)

func RequestId(r *http.Request) string {
	reqId, ok := r.Context().Value(middleware.RequestIdKey).(string)
	if !ok {
		return "unknown"
	}
	return reqId
}

func PathUUID(r *http.Request, name string) (uuid.UUID, *app_error.AppError) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, app_error.NewAppError(http.StatusBadRequest, "invalid identifier", name)
	}
	return id, nil
}

// AuthUserId returns the authenticated caller set by the JWT middleware.
func AuthUserId(r *http.Request) (uuid.UUID, *app_error.AppError) {
	userId, ok := r.Context().Value(middleware.UserIdKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, app_error.NewAppError(http.StatusUnauthorized, "missing authenticated user", "auth")
	}
	return userId, nil
}
