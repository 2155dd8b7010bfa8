package dto

import "github.com/GlebRadaev/mlmplatform/internal/domain"

type WalletInfoResponseDTO struct {
	CompanyWallet  domain.Money `json:"companyWallet" swaggertype:"number" example:"125.50"`
	RegisterWallet domain.Money `json:"registerWallet" swaggertype:"number" example:"40.00"`
	BonusWallet    domain.Money `json:"bonusWallet" swaggertype:"number" example:"9.99"`
	TotalBalance   domain.Money `json:"totalBalance" swaggertype:"number" example:"175.49"`
	IsQualified    bool         `json:"isQualified"`
}

func NewWalletInfoResponse(s *domain.WalletSummary) WalletInfoResponseDTO {
	return WalletInfoResponseDTO{
		CompanyWallet:  s.CompanyWallet,
		RegisterWallet: s.RegisterWallet,
		BonusWallet:    s.BonusWallet,
		TotalBalance:   s.Total,
		IsQualified:    s.IsQualified,
	}
}
