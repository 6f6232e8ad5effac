package user_service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/00rosa/rena-plataform/internal/entity"
	"github.com/00rosa/rena-plataform/internal/utils"
	"github.com/00rosa/rena-plataform/internal/utils/types"
	"github.com/00rosa/rena-plataform/state"
)

// JwtTokenIssuer signs RS256 session tokens and records the session in redis
// so it can be revoked server-side before the token expires.
type JwtTokenIssuer struct {
	Secret *state.JwtSecret
	Redis  *redis.Client
}

func NewJwtTokenIssuer(secret *state.JwtSecret, rdb *redis.Client) TokenIssuer {
	return &JwtTokenIssuer{Secret: secret, Redis: rdb}
}

func (j *JwtTokenIssuer) Issue(ctx context.Context, user *entity.User) (string, error) {
	token, jti, err := utils.IssueSessionToken(user.ID.String(), user.Name, j.Secret.Private)
	if err != nil {
		return "", err
	}

	now := time.Now()
	session := types.LoginSession{
		UserId:   user.ID.String(),
		JTI:      jti,
		IssueAt:  now.Unix(),
		ExpireAt: now.Add(utils.SessionTTL).Unix(),
		Status:   "valid",
	}

	key := fmt.Sprintf("session:%s:%s", session.UserId, jti)
	if err := utils.SetCacheData(ctx, j.Redis, key, &session, utils.SessionTTL); err != nil {
		log.Error().Err(err).Msg("failed to record login session")
		return "", err
	}

	return token, nil
}
