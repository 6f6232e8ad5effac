package middleware

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	app_error "github.com/00rosa/rena-plataform/internal/errors"
	"github.com/00rosa/rena-plataform/internal/utils"
	"github.com/00rosa/rena-plataform/internal/utils/types"
)

type userIdKey string

// UserIdKey holds the authenticated user's id. Handlers must take the caller
// identity from here, never fabricate one.
const UserIdKey userIdKey = "userId"

func JWTAuth(publicKey *rsa.PublicKey, rdb *redis.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeAppError(w, app_error.NewAppError(http.StatusUnauthorized, "Missing Authorization header", "auth"))
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				writeAppError(w, app_error.NewAppError(http.StatusUnauthorized, "Invalid Authorization header format", "auth"))
				return
			}

			claims, err := utils.ParseAndVerifySign(parts[1], publicKey)
			if err != nil {
				log.Error().Err(err).Msg("jwt verify failed")
				writeAppError(w, app_error.NewAppError(http.StatusUnauthorized, "Invalid or expired token", "auth"))
				return
			}

			sessionKey := fmt.Sprintf("session:%s:%s", claims.Sub, claims.Jti)
			session, sErr := utils.GetCacheData[types.LoginSession](r.Context(), rdb, sessionKey)
			if sErr != nil || session == nil || session.Status != "valid" || session.ExpireAt < time.Now().Unix() {
				writeAppError(w, app_error.NewAppError(http.StatusUnauthorized, "Session revoked or expired", "auth"))
				return
			}

			userId, parseErr := uuid.Parse(claims.Sub)
			if parseErr != nil {
				writeAppError(w, app_error.NewAppError(http.StatusUnauthorized, "Invalid token subject", "auth"))
				return
			}

			ctx := context.WithValue(r.Context(), UserIdKey, userId)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAppError(w http.ResponseWriter, appErr *app_error.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Code)
	_ = appErr.JSON(w)
}
