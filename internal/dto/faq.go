package dto

import (
	"time"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
)

type FAQRequestDTO struct {
	Question string `json:"question" validate:"required,max=500"`
	Answer   string `json:"answer" validate:"required,max=5000"`
	Position int    `json:"position" validate:"gte=0"`
	IsActive bool   `json:"isActive"`
}

type FAQResponseDTO struct {
	ID        int    `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Position  int    `json:"position"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
}

func NewFAQResponse(f domain.FAQ) FAQResponseDTO {
	return FAQResponseDTO{
		ID:        f.ID,
		Question:  f.Question,
		Answer:    f.Answer,
		Position:  f.Position,
		IsActive:  f.IsActive,
		CreatedAt: f.CreatedAt.Format(time.RFC3339),
	}
}
