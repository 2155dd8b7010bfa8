package accountservice

//go:generate mockgen -source=accountservice.go -destination=mock_accountservice.go -package=accountservice

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
	"github.com/GlebRadaev/mlmplatform/pkg/auth"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already in use by another account")
	ErrInvalidCredential = errors.New("current password is incorrect")
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	GetProfile(ctx context.Context, id int) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
	UpdatePasswordHash(ctx context.Context, id int, passwordHash string) error
}

type ProfileInput struct {
	FirstName  string
	LastName   string
	Email      string
	PayoutCard string
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
	}
}

func (s *Service) GetProfile(ctx context.Context, userID int) (*domain.Profile, error) {
	profile, err := s.userRepo.GetProfile(ctx, userID)
	if err != nil {
		zap.L().Error("can't get profile", zap.Error(err))
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}
	return profile, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int, in ProfileInput) (*domain.Profile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.Email = strings.ToLower(in.Email)
	user.PayoutCard = in.PayoutCard
	err = s.userRepo.UpdateProfile(ctx, user)
	switch {
	case errors.Is(err, domain.ErrConflict):
		return nil, ErrEmailTaken
	case errors.Is(err, domain.ErrNotFound):
		return nil, ErrUserNotFound
	case err != nil:
		zap.L().Error("can't update profile", zap.Error(err))
		return nil, err
	}

	zap.L().Info("profile updated", zap.Int("user_id", userID))
	return s.GetProfile(ctx, userID)
}

// ChangePassword replaces the stored hash when current matches it. A missing
// account is reported as a wrong password.
func (s *Service) ChangePassword(ctx context.Context, userID int, current, next string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return err
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, current) {
		zap.L().Info("password change rejected", zap.Int("user_id", userID))
		return ErrInvalidCredential
	}

	hash, err := s.hashService.HashPassword(next)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return err
	}
	err = s.userRepo.UpdatePasswordHash(ctx, userID, hash)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return ErrInvalidCredential
	case err != nil:
		zap.L().Error("can't update password", zap.Error(err))
		return err
	}

	zap.L().Info("password changed", zap.Int("user_id", userID))
	return nil
}
