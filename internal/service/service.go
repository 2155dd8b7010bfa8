package service

import (
	"github.com/GlebRadaev/mlmplatform/internal/config"
	"github.com/GlebRadaev/mlmplatform/internal/handlers/account"
	"github.com/GlebRadaev/mlmplatform/internal/handlers/auth"
	"github.com/GlebRadaev/mlmplatform/internal/handlers/faq"
	"github.com/GlebRadaev/mlmplatform/internal/handlers/packages"
	"github.com/GlebRadaev/mlmplatform/internal/handlers/session"
	"github.com/GlebRadaev/mlmplatform/internal/handlers/wallet"
	"github.com/GlebRadaev/mlmplatform/internal/repo"
	"github.com/GlebRadaev/mlmplatform/internal/service/accountservice"
	"github.com/GlebRadaev/mlmplatform/internal/service/authservice"
	"github.com/GlebRadaev/mlmplatform/internal/service/faqservice"
	"github.com/GlebRadaev/mlmplatform/internal/service/packageservice"
	"github.com/GlebRadaev/mlmplatform/internal/service/sessionservice"
	"github.com/GlebRadaev/mlmplatform/internal/service/walletservice"
	pkgauth "github.com/GlebRadaev/mlmplatform/pkg/auth"
)

type Services struct {
	AuthService    auth.Service
	WalletService  wallet.Service
	AccountService account.Service
	SessionService session.Service
	PackageService packages.Service
	FAQService     faq.Service
	Guard          *pkgauth.Guard
}

func New(repo *repo.Repositories, cfg *config.Config) *Services {
	hashService := pkgauth.NewHashService(cfg.BcryptCost)
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)

	authService := authservice.New(repo.UserRepo, hashService, jwtService, cfg.TokenTTL)

	return &Services{
		AuthService:    authService,
		WalletService:  walletservice.New(repo.WalletRepo),
		AccountService: accountservice.New(repo.UserRepo, hashService),
		SessionService: sessionservice.New(repo.UserRepo, authService),
		PackageService: packageservice.New(repo.PackageRepo),
		FAQService:     faqservice.New(repo.FAQRepo),
		Guard:          pkgauth.NewGuard(jwtService),
	}
}
