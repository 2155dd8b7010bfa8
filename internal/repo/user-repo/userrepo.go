package userrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
	"github.com/GlebRadaev/mlmplatform/internal/pg"
)

const selectUser = `
	SELECT id, username, email, password_hash, first_name, last_name, role, is_active, is_qualified,
		company_wallet, register_wallet, bonus_wallet, direct_referrals, payout_card, created_at
	FROM users
`

// emailKey is the unique constraint on users.email.
const emailKey = "users_email_key"

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user                     domain.User
		role                     string
		company, register, bonus int64
	)
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
		&role, &user.IsActive, &user.IsQualified,
		&company, &register, &bonus, &user.DirectReferrals, &user.PayoutCard, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Role = domain.Role(role)
	user.CompanyWallet = domain.Money(company)
	user.RegisterWallet = domain.Money(register)
	user.BonusWallet = domain.Money(bonus)
	return &user, nil
}

func (repo *Repository) findOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, selectUser+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	return repo.findOne(ctx, "WHERE id = $1", id)
}

func (repo *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return repo.findOne(ctx, "WHERE username = $1", username)
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return repo.findOne(ctx, "WHERE lower(email) = lower($1)", email)
}

// FindByLogin matches either the username or the email address.
func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	return repo.findOne(ctx, "WHERE username = $1 OR lower(email) = lower($1)", login)
}

func (repo *Repository) GetProfile(ctx context.Context, id int) (*domain.Profile, error) {
	query := `
		SELECT u.id, u.username, u.email, u.first_name, u.last_name, u.role, u.is_active, u.is_qualified,
			u.direct_referrals, u.payout_card, u.created_at,
			COALESCE(pt.name, ''), COALESCE(pt.rank, 0)
		FROM users u
		LEFT JOIN packages p ON p.id = u.package_id
		LEFT JOIN package_types pt ON pt.id = p.package_type_id
		WHERE u.id = $1
	`
	var (
		profile domain.Profile
		role    string
	)
	err := repo.db.QueryRow(ctx, query, id).Scan(
		&profile.ID, &profile.Username, &profile.Email, &profile.FirstName, &profile.LastName,
		&role, &profile.IsActive, &profile.IsQualified,
		&profile.DirectReferrals, &profile.PayoutCard, &profile.CreatedAt,
		&profile.PackageName, &profile.PackageRank,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't load profile", zap.Error(err))
		return nil, err
	}
	profile.Role = domain.Role(role)
	return &profile, nil
}

// Create stores a new member and bumps the sponsor's referral counter in the
// same transaction.
func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	insert := `
		INSERT INTO users (username, email, password_hash, first_name, last_name, role, sponsor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	increment := `
		UPDATE users
		SET direct_referrals = direct_referrals + 1, updated_at = now()
		WHERE id = $1
	`
	err := repo.txManager.Begin(ctx, func(ctx context.Context) error {
		var createdAt time.Time
		err := repo.db.QueryRow(ctx, insert,
			user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName, string(user.Role), user.SponsorID,
		).Scan(&user.ID, &createdAt)
		if err != nil {
			if constraint, ok := pg.UniqueViolation(err); ok {
				return conflict(constraint)
			}
			zap.L().Error("can't save user", zap.Error(err))
			return err
		}
		user.CreatedAt = createdAt

		if user.SponsorID == nil {
			return nil
		}
		tag, err := repo.db.Exec(ctx, increment, *user.SponsorID)
		if err != nil {
			zap.L().Error("can't update sponsor referrals", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (repo *Repository) UpdatePasswordHash(ctx context.Context, id int, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $1, updated_at = now()
		WHERE id = $2
	`
	tag, err := repo.db.Exec(ctx, query, passwordHash, id)
	if err != nil {
		zap.L().Error("can't update password", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (repo *Repository) UpdateProfile(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, email = $3, payout_card = $4, updated_at = now()
		WHERE id = $5
	`
	tag, err := repo.db.Exec(ctx, query, user.FirstName, user.LastName, user.Email, user.PayoutCard, user.ID)
	if err != nil {
		if constraint, ok := pg.UniqueViolation(err); ok {
			return conflict(constraint)
		}
		zap.L().Error("can't update profile", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func conflict(constraint string) error {
	if constraint == emailKey {
		return domain.ErrEmailConflict
	}
	return domain.ErrConflict
}
