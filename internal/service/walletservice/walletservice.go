package walletservice

//go:generate mockgen -source=walletservice.go -destination=mock_walletservice.go -package=walletservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
)

var ErrUserNotFound = errors.New("user not found")

type Repo interface {
	GetUserWallet(ctx context.Context, userID int) (*domain.Wallet, error)
}

type Service struct {
	walletRepo Repo
}

func New(walletRepo Repo) *Service {
	return &Service{
		walletRepo: walletRepo,
	}
}

// GetWalletInfo reads the three ledgers of userID and totals them.
func (s *Service) GetWalletInfo(ctx context.Context, userID int) (*domain.WalletSummary, error) {
	wallet, err := s.walletRepo.GetUserWallet(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return nil, ErrUserNotFound
	}
	summary, err := domain.NewWalletSummary(wallet)
	if err != nil {
		zap.L().Error("failed to total wallet", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return summary, nil
}
