package dto

import "github.com/GlebRadaev/mlmplatform/internal/domain"

type SessionResponseDTO struct {
	UserID          int         `json:"userId"`
	Role            domain.Role `json:"role"`
	IsImpersonating bool        `json:"isImpersonating"`
	AdminID         int         `json:"adminId,omitempty"`
	AdminRole       domain.Role `json:"adminRole,omitempty"`
}

func NewSessionResponse(id domain.Identity) SessionResponseDTO {
	resp := SessionResponseDTO{
		UserID: id.UserID(),
		Role:   id.Role(),
	}
	if adminID, adminRole, ok := domain.Provenance(id); ok {
		resp.IsImpersonating = true
		resp.AdminID = adminID
		resp.AdminRole = adminRole
	}
	return resp
}
