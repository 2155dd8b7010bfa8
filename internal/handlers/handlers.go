package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/mlmplatform/docs"
	"github.com/GlebRadaev/mlmplatform/internal/config"
	"github.com/GlebRadaev/mlmplatform/internal/domain"
	accounthandlers "github.com/GlebRadaev/mlmplatform/internal/handlers/account"
	authhandlers "github.com/GlebRadaev/mlmplatform/internal/handlers/auth"
	faqhandlers "github.com/GlebRadaev/mlmplatform/internal/handlers/faq"
	packagehandlers "github.com/GlebRadaev/mlmplatform/internal/handlers/packages"
	sessionhandlers "github.com/GlebRadaev/mlmplatform/internal/handlers/session"
	wallethandlers "github.com/GlebRadaev/mlmplatform/internal/handlers/wallet"
	"github.com/GlebRadaev/mlmplatform/internal/metrics"
	"github.com/GlebRadaev/mlmplatform/internal/service"
	"github.com/GlebRadaev/mlmplatform/pkg/auth"
	"github.com/GlebRadaev/mlmplatform/pkg/ratelimit"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWalletInfo(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
}

type SessionHandler interface {
	GetSession(w http.ResponseWriter, r *http.Request)
	Impersonate(w http.ResponseWriter, r *http.Request)
	StopImpersonation(w http.ResponseWriter, r *http.Request)
}

type PackageHandler interface {
	ListPackages(w http.ResponseWriter, r *http.Request)
}

type FAQHandler interface {
	ListPublished(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	WalletHandler  WalletHandler
	AccountHandler AccountHandler
	SessionHandler SessionHandler
	PackageHandler PackageHandler
	FAQHandler     FAQHandler

	authMiddleware *auth.Middleware
	loginLimiter   *ratelimit.Limiter
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	cookie := auth.CookieConfig{TTL: cfg.TokenTTL, Secure: cfg.CookieSecure}

	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService, cookie),
		WalletHandler:  wallethandlers.New(s.WalletService),
		AccountHandler: accounthandlers.New(s.AccountService),
		SessionHandler: sessionhandlers.New(s.SessionService, cookie),
		PackageHandler: packagehandlers.New(s.PackageService),
		FAQHandler:     faqhandlers.New(s.FAQService),
		authMiddleware: auth.NewMiddleware(s.Guard),
		loginLimiter:   ratelimit.New(cfg.LoginRateLimit, cfg.LoginRateBurst),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.InstrumentHandler,
	)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Get("/packages", h.PackageHandler.ListPackages)
		r.Get("/faqs", h.FAQHandler.ListPublished)

		r.Route("/user", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(h.loginLimiter.Handler)
				r.Post("/register", h.AuthHandler.Register)
				r.Post("/login", h.AuthHandler.Login)
			})
			r.Post("/logout", h.AuthHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(h.authMiddleware.Authenticate)
				r.Get("/wallet-info", h.WalletHandler.GetWalletInfo)
				r.Post("/settings/password", h.AccountHandler.ChangePassword)
				r.Get("/profile", h.AccountHandler.GetProfile)
				r.Put("/profile", h.AccountHandler.UpdateProfile)
			})
		})

		r.Route("/session", func(r chi.Router) {
			r.Use(h.authMiddleware.Authenticate)
			r.Get("/", h.SessionHandler.GetSession)
			r.Delete("/impersonation", h.SessionHandler.StopImpersonation)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.authMiddleware.Authenticate, auth.Require(domain.CanAdminister))
			r.Post("/users/{id}/impersonate", h.SessionHandler.Impersonate)
			r.Route("/faqs", func(r chi.Router) {
				r.Get("/", h.FAQHandler.ListAll)
				r.Post("/", h.FAQHandler.Create)
				r.Put("/{id}", h.FAQHandler.Update)
				r.Delete("/{id}", h.FAQHandler.Delete)
			})
		})
	})

	return r
}
