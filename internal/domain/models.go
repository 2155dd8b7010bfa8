package domain

import "time"

type User struct {
	ID              int       `db:"id"`
	Username        string    `db:"username"`
	Email           string    `db:"email"`
	PasswordHash    string    `db:"password_hash"`
	FirstName       string    `db:"first_name"`
	LastName        string    `db:"last_name"`
	Role            Role      `db:"role"`
	IsActive        bool      `db:"is_active"`
	IsQualified     bool      `db:"is_qualified"`
	CompanyWallet   Money     `db:"company_wallet"`
	RegisterWallet  Money     `db:"register_wallet"`
	BonusWallet     Money     `db:"bonus_wallet"`
	SponsorID       *int      `db:"sponsor_id"`
	DirectReferrals int       `db:"direct_referrals"`
	PayoutCard      string    `db:"payout_card"`
	CreatedAt       time.Time `db:"created_at"`
}

// Profile is a user joined with the tier of the package they own.
// PackageName is empty when no package was purchased.
type Profile struct {
	User
	PackageName string `db:"package_name"`
	PackageRank int    `db:"package_rank"`
}

type PackageType struct {
	ID    int    `db:"id"`
	Name  string `db:"name"`
	Rank  int    `db:"rank"`
	Price Money  `db:"price"`
}

type Package struct {
	ID            int       `db:"id"`
	PackageTypeID int       `db:"package_type_id"`
	PurchasedAt   time.Time `db:"purchased_at"`
}

type FAQ struct {
	ID        int       `db:"id"`
	Question  string    `db:"question"`
	Answer    string    `db:"answer"`
	Position  int       `db:"position"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}
