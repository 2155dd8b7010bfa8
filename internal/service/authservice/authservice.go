package authservice

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
	"github.com/GlebRadaev/mlmplatform/pkg/auth"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already in use")
	ErrSponsorNotFound    = errors.New("sponsor not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")
)

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Sponsor   string
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
	}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	existing, err := s.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		zap.L().Error("can't find user by username", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("username already taken", zap.String("username", in.Username))
		return nil, ErrUsernameTaken
	}
	existing, err = s.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	user := &domain.User{
		Username:  in.Username,
		Email:     strings.ToLower(in.Email),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      domain.RoleMember,
		IsActive:  true,
	}
	if in.Sponsor != "" {
		sponsor, err := s.userRepo.FindByUsername(ctx, in.Sponsor)
		if err != nil {
			zap.L().Error("can't find sponsor", zap.Error(err))
			return nil, err
		}
		if sponsor == nil {
			return nil, ErrSponsorNotFound
		}
		user.SponsorID = &sponsor.ID
	}

	user.PasswordHash, err = s.hashService.HashPassword(in.Password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	newUser, err := s.userRepo.Create(ctx, user)
	switch {
	case errors.Is(err, domain.ErrEmailConflict):
		return nil, ErrEmailTaken
	case errors.Is(err, domain.ErrConflict):
		return nil, ErrUsernameTaken
	case errors.Is(err, domain.ErrNotFound):
		return nil, ErrSponsorNotFound
	case err != nil:
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("username", in.Username))
	return newUser, nil
}

// Authenticate accepts either the username or the email as login.
func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountInactive
	}
	zap.L().Info("user successfully authenticated", zap.Int("user_id", user.ID))
	return user, nil
}

func (s *Service) GenerateToken(identity domain.Identity) (string, error) {
	token, err := s.jwtService.GenerateJWT(identity, time.Now().Add(s.tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
