package account

//go:generate mockgen -source=account.go -destination=mock_account.go -package=account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
	"github.com/GlebRadaev/mlmplatform/internal/dto"
	"github.com/GlebRadaev/mlmplatform/internal/service/accountservice"
	"github.com/GlebRadaev/mlmplatform/pkg/auth"
	"github.com/GlebRadaev/mlmplatform/pkg/utils"
	"github.com/GlebRadaev/mlmplatform/pkg/validate"
)

type Service interface {
	GetProfile(ctx context.Context, userID int) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID int, in accountservice.ProfileInput) (*domain.Profile, error)
	ChangePassword(ctx context.Context, userID int, current, next string) error
}

type AccountHandler struct {
	accountService Service
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// GetProfile godoc
//
//	@Summary		Get profile
//	@Description	Identity fields, qualification and package tier of the session user
//	@Tags			Account
//	@Security		CookieAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/profile [get]
func (h *AccountHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := h.accountService.GetProfile(r.Context(), identity.UserID())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProfileResponse(profile))
}

// UpdateProfile godoc
//
//	@Summary		Update profile
//	@Description	Change name, email and payout card of the session user
//	@Tags			Account
//	@Security		CookieAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateProfileRequestDTO	true	"Profile fields"
//	@Success		200		{object}	dto.ProfileResponseDTO
//	@Failure		400		{object}	utils.ValidationResponse	"Invalid request or email in use"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"User not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/profile [put]
func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.UpdateProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		utils.RespondWithValidationError(w, errs)
		return
	}

	profile, err := h.accountService.UpdateProfile(r.Context(), identity.UserID(), accountservice.ProfileInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		PayoutCard: req.PayoutCard,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProfileResponse(profile))
}

// ChangePassword godoc
//
//	@Summary		Change password
//	@Description	Replace the password after checking the current one
//	@Tags			Account
//	@Security		CookieAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ChangePasswordRequestDTO	true	"Current and new password"
//	@Success		200		{object}	dto.SuccessResponseDTO
//	@Failure		400		{object}	utils.ValidationResponse	"Invalid request or wrong current password"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/settings/password [post]
func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.ChangePasswordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Struct(req); errs != nil {
		utils.RespondWithValidationError(w, errs)
		return
	}

	if err := h.accountService.ChangePassword(r.Context(), identity.UserID(), req.CurrentPassword, req.NewPassword); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SuccessResponseDTO{Success: true})
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accountservice.ErrInvalidCredential),
		errors.Is(err, accountservice.ErrEmailTaken):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, accountservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
