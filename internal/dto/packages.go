package dto

import "github.com/GlebRadaev/mlmplatform/internal/domain"

type PackageTypeResponseDTO struct {
	ID    int          `json:"id"`
	Name  string       `json:"name"`
	Rank  int          `json:"rank"`
	Price domain.Money `json:"price" swaggertype:"number" example:"50.00"`
}
