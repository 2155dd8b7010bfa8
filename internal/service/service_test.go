package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/mlmplatform/internal/config"
	"github.com/GlebRadaev/mlmplatform/internal/repo"
	"github.com/GlebRadaev/mlmplatform/internal/service/accountservice"
	"github.com/GlebRadaev/mlmplatform/internal/service/authservice"
	"github.com/GlebRadaev/mlmplatform/internal/service/faqservice"
	"github.com/GlebRadaev/mlmplatform/internal/service/packageservice"
	"github.com/GlebRadaev/mlmplatform/internal/service/walletservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	repos := &repo.Repositories{
		UserRepo:    newUserRepoMock(ctrl),
		WalletRepo:  walletservice.NewMockRepo(ctrl),
		PackageRepo: packageservice.NewMockRepo(ctrl),
		FAQRepo:     faqservice.NewMockRepo(ctrl),
	}
	cfg := &config.Config{JWTSecret: "secret", TokenTTL: time.Hour, BcryptCost: 4}

	services := New(repos, cfg)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.WalletService)
	assert.NotNil(t, services.AccountService)
	assert.NotNil(t, services.SessionService)
	assert.NotNil(t, services.PackageService)
	assert.NotNil(t, services.FAQService)
	assert.NotNil(t, services.Guard)
}

// userRepoMock joins the auth and account mocks into one repo.UserRepo.
type (
	authRepoMock    = authservice.MockRepo
	accountRepoMock = accountservice.MockRepo
)

type userRepoMock struct {
	*authRepoMock
	*accountRepoMock
}

func newUserRepoMock(ctrl *gomock.Controller) repo.UserRepo {
	return userRepoMock{
		authservice.NewMockRepo(ctrl),
		accountservice.NewMockRepo(ctrl),
	}
}
