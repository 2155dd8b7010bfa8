package packages

//go:generate mockgen -source=packages.go -destination=mock_packages.go -package=packages

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
	"github.com/GlebRadaev/mlmplatform/internal/dto"
	"github.com/GlebRadaev/mlmplatform/pkg/utils"
)

type Service interface {
	ListTypes(ctx context.Context) ([]domain.PackageType, error)
}

type PackageHandler struct {
	packageService Service
}

func New(packageService Service) *PackageHandler {
	return &PackageHandler{
		packageService: packageService,
	}
}

// ListPackages godoc
//
//	@Summary		List package tiers
//	@Description	Purchasable package tiers ordered by rank
//	@Tags			Packages
//	@Produce		json
//	@Success		200	{array}		dto.PackageTypeResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/packages [get]
func (h *PackageHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	types, err := h.packageService.ListTypes(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.PackageTypeResponseDTO, 0, len(types))
	for _, t := range types {
		resp = append(resp, dto.PackageTypeResponseDTO{
			ID:    t.ID,
			Name:  t.Name,
			Rank:  t.Rank,
			Price: t.Price,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
