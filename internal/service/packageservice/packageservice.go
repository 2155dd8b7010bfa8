package packageservice

//go:generate mockgen -source=packageservice.go -destination=mock_packageservice.go -package=packageservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
)

type Repo interface {
	ListTypes(ctx context.Context) ([]domain.PackageType, error)
}

type Service struct {
	packageRepo Repo
}

func New(repo Repo) *Service {
	return &Service{packageRepo: repo}
}

func (s *Service) ListTypes(ctx context.Context) ([]domain.PackageType, error) {
	types, err := s.packageRepo.ListTypes(ctx)
	if err != nil {
		zap.L().Error("can't list package types", zap.Error(err))
		return nil, err
	}
	return types, nil
}
