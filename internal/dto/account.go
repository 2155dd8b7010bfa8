package dto

import (
	"time"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
)

type ChangePasswordRequestDTO struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=72"`
}

type SuccessResponseDTO struct {
	Success bool `json:"success"`
}

type UpdateProfileRequestDTO struct {
	FirstName  string `json:"firstName" validate:"required,max=100"`
	LastName   string `json:"lastName" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email,max=255"`
	PayoutCard string `json:"payoutCard" validate:"omitempty,numeric,min=12,max=19,luhn"`
}

type ProfileResponseDTO struct {
	ID              int         `json:"id"`
	Username        string      `json:"username"`
	Email           string      `json:"email"`
	FirstName       string      `json:"firstName"`
	LastName        string      `json:"lastName"`
	Role            domain.Role `json:"role"`
	IsActive        bool        `json:"isActive"`
	IsQualified     bool        `json:"isQualified"`
	DirectReferrals int         `json:"directReferrals"`
	PayoutCard      string      `json:"payoutCard,omitempty"`
	Package         string      `json:"package,omitempty"`
	CreatedAt       string      `json:"createdAt"`
}

func NewProfileResponse(p *domain.Profile) ProfileResponseDTO {
	return ProfileResponseDTO{
		ID:              p.ID,
		Username:        p.Username,
		Email:           p.Email,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		Role:            p.Role,
		IsActive:        p.IsActive,
		IsQualified:     p.IsQualified,
		DirectReferrals: p.DirectReferrals,
		PayoutCard:      p.PayoutCard,
		Package:         p.PackageName,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
}
