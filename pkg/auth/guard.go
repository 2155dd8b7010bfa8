package auth

import (
	"go.uber.org/zap"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
)

// Guard resolves an opaque session token into an identity. Absent, malformed,
// expired or forged tokens all yield ok == false; callers never see why.
type Guard struct {
	tokens JWTServiceInterface
}

func NewGuard(tokens JWTServiceInterface) *Guard {
	return &Guard{tokens: tokens}
}

func (g *Guard) Resolve(token string) (id domain.Identity, ok bool) {
	if token == "" {
		return nil, false
	}
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("token verification panicked", zap.Any("panic", r))
			id, ok = nil, false
		}
	}()

	claims, err := g.tokens.ValidateToken(token)
	if err != nil || claims == nil {
		zap.L().Debug("rejected session token", zap.Error(err))
		return nil, false
	}
	id, err = claims.Identity()
	if err != nil {
		zap.L().Debug("rejected session claims", zap.Error(err))
		return nil, false
	}
	return id, true
}
