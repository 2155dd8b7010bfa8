package session

//go:generate mockgen -source=session.go -destination=mock_session.go -package=session

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
	"github.com/GlebRadaev/mlmplatform/internal/dto"
	"github.com/GlebRadaev/mlmplatform/internal/service/sessionservice"
	"github.com/GlebRadaev/mlmplatform/pkg/auth"
	"github.com/GlebRadaev/mlmplatform/pkg/utils"
)

type Service interface {
	Impersonate(ctx context.Context, actor domain.Identity, targetID int) (domain.Identity, string, error)
	StopImpersonation(ctx context.Context, identity domain.Identity) (domain.Identity, string, error)
}

type SessionHandler struct {
	sessionService Service
	cookie         auth.CookieConfig
}

func New(sessionService Service, cookie auth.CookieConfig) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		cookie:         cookie,
	}
}

// GetSession godoc
//
//	@Summary		Describe the current session
//	@Description	Resolved identity, including the administrator behind an impersonation
//	@Tags			Session
//	@Security		CookieAuth
//	@Produce		json
//	@Success		200	{object}	dto.SessionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/session [get]
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSessionResponse(identity))
}

// Impersonate godoc
//
//	@Summary		Act as another user
//	@Description	Replace the session cookie with one for the target user while keeping the administrator on record
//	@Tags			Admin
//	@Security		CookieAuth
//	@Produce		json
//	@Param			id	path		int	true	"Target user id"
//	@Success		200	{object}	dto.SessionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid user id"
//	@Failure		401	{object}	utils.Response	"Not authorized for this target"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id}/impersonate [post]
func (h *SessionHandler) Impersonate(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	targetID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || targetID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	identity, token, err := h.sessionService.Impersonate(r.Context(), actor, targetID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	auth.SetSessionCookie(w, token, h.cookie)
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSessionResponse(identity))
}

// StopImpersonation godoc
//
//	@Summary		Stop acting as another user
//	@Description	Return the administrator to their own session
//	@Tags			Session
//	@Security		CookieAuth
//	@Produce		json
//	@Success		200	{object}	dto.SessionResponseDTO
//	@Failure		400	{object}	utils.Response	"Session is not an impersonation"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/session/impersonation [delete]
func (h *SessionHandler) StopImpersonation(w http.ResponseWriter, r *http.Request) {
	current, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	identity, token, err := h.sessionService.StopImpersonation(r.Context(), current)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	auth.SetSessionCookie(w, token, h.cookie)
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSessionResponse(identity))
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sessionservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusUnauthorized, "Forbidden")
	case errors.Is(err, sessionservice.ErrNotImpersonating):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, sessionservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
