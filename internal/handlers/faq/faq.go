package faq

//go:generate mockgen -source=faq.go -destination=mock_faq.go -package=faq

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
	"github.com/GlebRadaev/mlmplatform/internal/dto"
	"github.com/GlebRadaev/mlmplatform/internal/service/faqservice"
	"github.com/GlebRadaev/mlmplatform/pkg/utils"
	"github.com/GlebRadaev/mlmplatform/pkg/validate"
)

type Service interface {
	ListPublished(ctx context.Context) ([]domain.FAQ, error)
	ListAll(ctx context.Context) ([]domain.FAQ, error)
	Create(ctx context.Context, in faqservice.Input) (*domain.FAQ, error)
	Update(ctx context.Context, id int, in faqservice.Input) (*domain.FAQ, error)
	Delete(ctx context.Context, id int) error
}

type FAQHandler struct {
	faqService Service
}

func New(faqService Service) *FAQHandler {
	return &FAQHandler{
		faqService: faqService,
	}
}

// ListPublished godoc
//
//	@Summary		List FAQs
//	@Description	Active FAQ entries in display order
//	@Tags			FAQ
//	@Produce		json
//	@Success		200	{array}		dto.FAQResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/faqs [get]
func (h *FAQHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	h.respondWithList(w, r, h.faqService.ListPublished)
}

// ListAll godoc
//
//	@Summary		List all FAQs
//	@Description	Every FAQ entry, including hidden ones
//	@Tags			Admin
//	@Security		CookieAuth
//	@Produce		json
//	@Success		200	{array}		dto.FAQResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/faqs [get]
func (h *FAQHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.respondWithList(w, r, h.faqService.ListAll)
}

func (h *FAQHandler) respondWithList(w http.ResponseWriter, r *http.Request, list func(context.Context) ([]domain.FAQ, error)) {
	faqs, err := list(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.FAQResponseDTO, 0, len(faqs))
	for _, f := range faqs {
		resp = append(resp, dto.NewFAQResponse(f))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Create godoc
//
//	@Summary		Create FAQ
//	@Tags			Admin
//	@Security		CookieAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.FAQRequestDTO	true	"FAQ entry"
//	@Success		201		{object}	dto.FAQResponseDTO
//	@Failure		400		{object}	utils.ValidationResponse	"Invalid request"
//	@Failure		401		{object}	utils.Response				"Not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/faqs [post]
func (h *FAQHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}
	faq, err := h.faqService.Create(r.Context(), in)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewFAQResponse(*faq))
}

// Update godoc
//
//	@Summary		Update FAQ
//	@Tags			Admin
//	@Security		CookieAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"FAQ id"
//	@Param			request	body		dto.FAQRequestDTO	true	"FAQ entry"
//	@Success		200		{object}	dto.FAQResponseDTO
//	@Failure		400		{object}	utils.ValidationResponse	"Invalid request"
//	@Failure		401		{object}	utils.Response				"Not authorized"
//	@Failure		404		{object}	utils.Response				"FAQ not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/faqs/{id} [put]
func (h *FAQHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := faqID(w, r)
	if !ok {
		return
	}
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}
	faq, err := h.faqService.Update(r.Context(), id, in)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewFAQResponse(*faq))
}

// Delete godoc
//
//	@Summary		Delete FAQ
//	@Tags			Admin
//	@Security		CookieAuth
//	@Param			id	path	int	true	"FAQ id"
//	@Success		204
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		404	{object}	utils.Response	"FAQ not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/faqs/{id} [delete]
func (h *FAQHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := faqID(w, r)
	if !ok {
		return
	}
	if err := h.faqService.Delete(r.Context(), id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func faqID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid faq id")
		return 0, false
	}
	return id, true
}

func decodeInput(w http.ResponseWriter, r *http.Request) (faqservice.Input, bool) {
	var req dto.FAQRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return faqservice.Input{}, false
	}
	if errs := validate.Struct(req); errs != nil {
		utils.RespondWithValidationError(w, errs)
		return faqservice.Input{}, false
	}
	return faqservice.Input{
		Question: req.Question,
		Answer:   req.Answer,
		Position: req.Position,
		IsActive: req.IsActive,
	}, true
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, faqservice.ErrFAQNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "FAQ not found")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
