package sessionservice

//go:generate mockgen -source=sessionservice.go -destination=mock_sessionservice.go -package=sessionservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrForbidden        = errors.New("insufficient role")
	ErrNotImpersonating = errors.New("session is not an impersonation")
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Tokens interface {
	GenerateToken(identity domain.Identity) (string, error)
}

type Service struct {
	userRepo Repo
	tokens   Tokens
}

func New(repo Repo, tokens Tokens) *Service {
	return &Service{
		userRepo: repo,
		tokens:   tokens,
	}
}

// Impersonate mints a token that acts as targetID on behalf of actor. The
// actor's role is re-read from storage so a demoted administrator cannot use
// an older token.
func (s *Service) Impersonate(ctx context.Context, actor domain.Identity, targetID int) (domain.Identity, string, error) {
	if _, _, nested := domain.Provenance(actor); nested || actor.UserID() == targetID {
		return nil, "", ErrForbidden
	}
	admin, err := s.userRepo.FindByID(ctx, actor.UserID())
	if err != nil {
		zap.L().Error("can't find administrator", zap.Error(err))
		return nil, "", err
	}
	if admin == nil || !admin.IsActive || !domain.CanAdminister(admin.Role) {
		return nil, "", ErrForbidden
	}
	target, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		zap.L().Error("can't find impersonation target", zap.Error(err))
		return nil, "", err
	}
	if target == nil {
		return nil, "", ErrUserNotFound
	}
	if !domain.CanImpersonate(admin.Role, target.Role) {
		return nil, "", ErrForbidden
	}

	identity := domain.NewImpersonation(domain.NewSession(target.ID, target.Role), admin.ID, admin.Role)
	token, err := s.tokens.GenerateToken(identity)
	if err != nil {
		return nil, "", err
	}
	zap.L().Info("impersonation started", zap.Int("admin_id", admin.ID), zap.Int("target_id", target.ID))
	return identity, token, nil
}

// StopImpersonation returns the administrator behind identity to a normal
// session.
func (s *Service) StopImpersonation(ctx context.Context, identity domain.Identity) (domain.Identity, string, error) {
	adminID, _, ok := domain.Provenance(identity)
	if !ok {
		return nil, "", ErrNotImpersonating
	}
	admin, err := s.userRepo.FindByID(ctx, adminID)
	if err != nil {
		zap.L().Error("can't find administrator", zap.Error(err))
		return nil, "", err
	}
	if admin == nil || !admin.IsActive {
		return nil, "", ErrUserNotFound
	}

	session := domain.NewSession(admin.ID, admin.Role)
	token, err := s.tokens.GenerateToken(session)
	if err != nil {
		return nil, "", err
	}
	zap.L().Info("impersonation stopped", zap.Int("admin_id", admin.ID), zap.Int("target_id", identity.UserID()))
	return session, token, nil
}
