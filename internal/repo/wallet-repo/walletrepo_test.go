package walletrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_GetUserWallet(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT id, company_wallet, register_wallet, bonus_wallet, is_qualified FROM users WHERE id = $1`)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.Wallet
	}{
		{
			name:   "Wallet found",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "company_wallet", "register_wallet", "bonus_wallet", "is_qualified"}).
					AddRow(1, int64(10050), int64(0), int64(25), true)
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)
			},
			result: &domain.Wallet{
				UserID:         1,
				CompanyWallet:  10050,
				RegisterWallet: 0,
				BonusWallet:    25,
				IsQualified:    true,
			},
		},
		{
			name:   "Unknown user",
			userID: 99,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetUserWallet(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
