package faqrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
	"github.com/GlebRadaev/mlmplatform/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) List(ctx context.Context, activeOnly bool) ([]domain.FAQ, error) {
	query := `
		SELECT id, question, answer, position, is_active, created_at
		FROM faqs
		WHERE is_active OR NOT $1
		ORDER BY position ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, activeOnly)
	if err != nil {
		zap.L().Error("can't get faqs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	faqs := make([]domain.FAQ, 0)
	for rows.Next() {
		var faq domain.FAQ
		if err := rows.Scan(&faq.ID, &faq.Question, &faq.Answer, &faq.Position, &faq.IsActive, &faq.CreatedAt); err != nil {
			zap.L().Error("can't scan faq row", zap.Error(err))
			return nil, err
		}
		faqs = append(faqs, faq)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate faqs", zap.Error(err))
		return nil, err
	}
	return faqs, nil
}

func (r *Repository) Create(ctx context.Context, faq *domain.FAQ) (*domain.FAQ, error) {
	query := `
		INSERT INTO faqs (question, answer, position, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, faq.Question, faq.Answer, faq.Position, faq.IsActive).Scan(&faq.ID, &faq.CreatedAt)
	if err != nil {
		zap.L().Error("can't save faq", zap.Error(err))
		return nil, err
	}
	return faq, nil
}

// Update overwrites the faq and returns nil, nil when it does not exist.
func (r *Repository) Update(ctx context.Context, faq *domain.FAQ) (*domain.FAQ, error) {
	query := `
		UPDATE faqs
		SET question = $1, answer = $2, position = $3, is_active = $4
		WHERE id = $5
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, faq.Question, faq.Answer, faq.Position, faq.IsActive, faq.ID).Scan(&faq.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't update faq", zap.Error(err))
		return nil, err
	}
	return faq, nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM faqs WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete faq", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
