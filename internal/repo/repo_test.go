package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/mlmplatform/internal/pg"
	faqrepo "github.com/GlebRadaev/mlmplatform/internal/repo/faq-repo"
	packagerepo "github.com/GlebRadaev/mlmplatform/internal/repo/package-repo"
	userrepo "github.com/GlebRadaev/mlmplatform/internal/repo/user-repo"
	walletrepo "github.com/GlebRadaev/mlmplatform/internal/repo/wallet-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, pg.NewMockTXManager(ctrl)), mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &walletrepo.Repository{}, repo.WalletRepo)
	assert.IsType(t, &packagerepo.Repository{}, repo.PackageRepo)
	assert.IsType(t, &faqrepo.Repository{}, repo.FAQRepo)

	assert.NoError(t, mock.ExpectationsWereMet())
}
