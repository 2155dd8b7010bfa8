package auth

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
	"github.com/GlebRadaev/mlmplatform/internal/dto"
	"github.com/GlebRadaev/mlmplatform/internal/service/authservice"
	pkgauth "github.com/GlebRadaev/mlmplatform/pkg/auth"
	"github.com/GlebRadaev/mlmplatform/pkg/utils"
	"github.com/GlebRadaev/mlmplatform/pkg/validate"
)

type Service interface {
	Register(ctx context.Context, in authservice.RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, login, password string) (*domain.User, error)
	GenerateToken(identity domain.Identity) (string, error)
}

type AuthHandler struct {
	authService Service
	cookie      pkgauth.CookieConfig
}

func New(authService Service, cookie pkgauth.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookie:      cookie,
	}
}

// Register godoc
//
//	@Summary		Register a new member
//	@Description	Create a member account, optionally under a sponsor, and start a session
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.ValidationResponse	"Invalid request, taken username or email, unknown sponsor"
//	@Failure		429		{object}	utils.Response				"Too many requests"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		utils.RespondWithValidationError(w, errs)
		return
	}

	user, err := h.authService.Register(r.Context(), authservice.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Sponsor:   req.Sponsor,
	})
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrUsernameTaken),
			errors.Is(err, authservice.ErrEmailTaken),
			errors.Is(err, authservice.ErrSponsorNotFound):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	if !h.startSession(w, domain.NewSession(user.ID, user.Role)) {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		Message: "User successfully registered",
		UserID:  user.ID,
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with a username or email and receive the auth-token cookie
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.ValidationResponse	"Invalid request body"
//	@Failure		401		{object}	utils.Response				"Invalid credentials"
//	@Failure		429		{object}	utils.Response				"Too many requests"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		utils.RespondWithValidationError(w, errs)
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidCredentials),
			errors.Is(err, authservice.ErrAccountInactive):
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	if !h.startSession(w, domain.NewSession(user.ID, user.Role)) {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "User successfully authenticated",
	})
}

// Logout godoc
//
//	@Summary		Log out
//	@Description	Delete the auth-token cookie
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	utils.Response
//	@Router			/api/user/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	pkgauth.ClearSessionCookie(w, h.cookie)
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Logged out"})
}

func (h *AuthHandler) startSession(w http.ResponseWriter, identity domain.Identity) bool {
	token, err := h.authService.GenerateToken(identity)
	if err != nil {
		zap.L().Error("can't start session", zap.Int("user_id", identity.UserID()), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return false
	}
	pkgauth.SetSessionCookie(w, token, h.cookie)
	return true
}
