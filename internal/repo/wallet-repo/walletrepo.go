package walletrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
	"github.com/GlebRadaev/mlmplatform/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetUserWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
		SELECT id, company_wallet, register_wallet, bonus_wallet, is_qualified
		FROM users
		WHERE id = $1
	`
	var (
		wallet                   domain.Wallet
		company, register, bonus int64
	)
	err := r.db.QueryRow(ctx, query, userID).Scan(&wallet.UserID, &company, &register, &bonus, &wallet.IsQualified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get user wallet", zap.Error(err))
		return nil, err
	}
	wallet.CompanyWallet = domain.Money(company)
	wallet.RegisterWallet = domain.Money(register)
	wallet.BonusWallet = domain.Money(bonus)
	return &wallet, nil
}
