package domain

// Wallet is the slice of a user record holding its three ledgers.
type Wallet struct {
	UserID         int   `db:"id"`
	CompanyWallet  Money `db:"company_wallet"`
	RegisterWallet Money `db:"register_wallet"`
	BonusWallet    Money `db:"bonus_wallet"`
	IsQualified    bool  `db:"is_qualified"`
}

// WalletSummary is a read-time snapshot of a wallet. Total is derived and
// never persisted.
type WalletSummary struct {
	CompanyWallet  Money
	RegisterWallet Money
	BonusWallet    Money
	Total          Money
	IsQualified    bool
}

func NewWalletSummary(w *Wallet) (*WalletSummary, error) {
	total, err := w.CompanyWallet.Add(w.RegisterWallet)
	if err != nil {
		return nil, err
	}
	total, err = total.Add(w.BonusWallet)
	if err != nil {
		return nil, err
	}
	return &WalletSummary{
		CompanyWallet:  w.CompanyWallet,
		RegisterWallet: w.RegisterWallet,
		BonusWallet:    w.BonusWallet,
		Total:          total,
		IsQualified:    w.IsQualified,
	}, nil
}
