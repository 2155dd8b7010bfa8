package wallet

//go:generate mockgen -source=wallet.go -destination=mock_wallet.go -package=wallet

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
	"github.com/GlebRadaev/mlmplatform/internal/dto"
	"github.com/GlebRadaev/mlmplatform/internal/service/walletservice"
	"github.com/GlebRadaev/mlmplatform/pkg/auth"
	"github.com/GlebRadaev/mlmplatform/pkg/utils"
)

type Service interface {
	GetWalletInfo(ctx context.Context, userID int) (*domain.WalletSummary, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWalletInfo godoc
//
//	@Summary		Get wallet summary
//	@Description	Company, register and bonus balances of the session user with their total
//	@Tags			Wallet
//	@Security		CookieAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletInfoResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/wallet-info [get]
func (h *WalletHandler) GetWalletInfo(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := h.walletService.GetWalletInfo(r.Context(), identity.UserID())
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWalletInfoResponse(summary))
}
