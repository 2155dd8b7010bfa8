package faqservice

//go:generate mockgen -source=faqservice.go -destination=mock_faqservice.go -package=faqservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
)

var ErrFAQNotFound = errors.New("faq not found")

type Repo interface {
	List(ctx context.Context, activeOnly bool) ([]domain.FAQ, error)
	Create(ctx context.Context, faq *domain.FAQ) (*domain.FAQ, error)
	Update(ctx context.Context, faq *domain.FAQ) (*domain.FAQ, error)
	Delete(ctx context.Context, id int) error
}

type Input struct {
	Question string
	Answer   string
	Position int
	IsActive bool
}

type Service struct {
	faqRepo Repo
}

func New(repo Repo) *Service {
	return &Service{faqRepo: repo}
}

// ListPublished returns the active entries in display order.
func (s *Service) ListPublished(ctx context.Context) ([]domain.FAQ, error) {
	return s.list(ctx, true)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.FAQ, error) {
	return s.list(ctx, false)
}

func (s *Service) list(ctx context.Context, activeOnly bool) ([]domain.FAQ, error) {
	faqs, err := s.faqRepo.List(ctx, activeOnly)
	if err != nil {
		zap.L().Error("can't list faqs", zap.Error(err))
		return nil, err
	}
	return faqs, nil
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.FAQ, error) {
	faq, err := s.faqRepo.Create(ctx, &domain.FAQ{
		Question: in.Question,
		Answer:   in.Answer,
		Position: in.Position,
		IsActive: in.IsActive,
	})
	if err != nil {
		zap.L().Error("can't create faq", zap.Error(err))
		return nil, err
	}
	zap.L().Info("faq created", zap.Int("faq_id", faq.ID))
	return faq, nil
}

func (s *Service) Update(ctx context.Context, id int, in Input) (*domain.FAQ, error) {
	faq, err := s.faqRepo.Update(ctx, &domain.FAQ{
		ID:       id,
		Question: in.Question,
		Answer:   in.Answer,
		Position: in.Position,
		IsActive: in.IsActive,
	})
	if err != nil {
		zap.L().Error("can't update faq", zap.Error(err))
		return nil, err
	}
	if faq == nil {
		return nil, ErrFAQNotFound
	}
	return faq, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	err := s.faqRepo.Delete(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return ErrFAQNotFound
	case err != nil:
		zap.L().Error("can't delete faq", zap.Error(err))
		return err
	}
	zap.L().Info("faq deleted", zap.Int("faq_id", id))
	return nil
}
