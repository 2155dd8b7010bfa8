package repo

import (
	"github.com/GlebRadaev/mlmplatform/internal/pg"
	faqrepo "github.com/GlebRadaev/mlmplatform/internal/repo/faq-repo"
	packagerepo "github.com/GlebRadaev/mlmplatform/internal/repo/package-repo"
	userrepo "github.com/GlebRadaev/mlmplatform/internal/repo/user-repo"
	walletrepo "github.com/GlebRadaev/mlmplatform/internal/repo/wallet-repo"
	"github.com/GlebRadaev/mlmplatform/internal/service/accountservice"
	"github.com/GlebRadaev/mlmplatform/internal/service/authservice"
	"github.com/GlebRadaev/mlmplatform/internal/service/faqservice"
	"github.com/GlebRadaev/mlmplatform/internal/service/packageservice"
	"github.com/GlebRadaev/mlmplatform/internal/service/sessionservice"
	"github.com/GlebRadaev/mlmplatform/internal/service/walletservice"
)

// UserRepo is everything the services need from the users table.
type UserRepo interface {
	authservice.Repo
	accountservice.Repo
	sessionservice.Repo
}

type Repositories struct {
	UserRepo    UserRepo
	WalletRepo  walletservice.Repo
	PackageRepo packageservice.Repo
	FAQRepo     faqservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn, txManager),
		WalletRepo:  walletrepo.New(conn),
		PackageRepo: packagerepo.New(conn),
		FAQRepo:     faqrepo.New(conn),
	}
}
