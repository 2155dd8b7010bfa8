package faqrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT id, question, answer, position, is_active, created_at FROM faqs WHERE is_active OR NOT $1`)
	createdAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{"id", "question", "answer", "position", "is_active", "created_at"}

	tests := []struct {
		name       string
		activeOnly bool
		mockSetup  func()
		expectErr  bool
		result     []domain.FAQ
	}{
		{
			name:       "Active only",
			activeOnly: true,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(true).WillReturnRows(pgxmock.NewRows(columns).
					AddRow(1, "How?", "Like this.", 1, true, createdAt))
			},
			result: []domain.FAQ{{ID: 1, Question: "How?", Answer: "Like this.", Position: 1, IsActive: true, CreatedAt: createdAt}},
		},
		{
			name:       "Empty",
			activeOnly: false,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(false).WillReturnRows(pgxmock.NewRows(columns))
			},
			result: []domain.FAQ{},
		},
		{
			name:       "Database error",
			activeOnly: true,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(true).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.List(context.Background(), tt.activeOnly)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`INSERT INTO faqs (question, answer, position, is_active) VALUES ($1, $2, $3, $4) RETURNING id, created_at`)
	createdAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(query).WithArgs("Q", "A", 2, true).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(3, createdAt))

	faq, err := repo.Create(context.Background(), &domain.FAQ{Question: "Q", Answer: "A", Position: 2, IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, 3, faq.ID)
	assert.Equal(t, createdAt, faq.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE faqs SET question = $1, answer = $2, position = $3, is_active = $4 WHERE id = $5 RETURNING created_at`)

	t.Run("Updated", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("Q", "A", 1, false, 3).
			WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Time{}))

		faq, err := repo.Update(context.Background(), &domain.FAQ{ID: 3, Question: "Q", Answer: "A", Position: 1})
		require.NoError(t, err)
		assert.Equal(t, 3, faq.ID)
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("Q", "A", 1, false, 4).WillReturnError(pgx.ErrNoRows)

		faq, err := repo.Update(context.Background(), &domain.FAQ{ID: 4, Question: "Q", Answer: "A", Position: 1})
		assert.NoError(t, err)
		assert.Nil(t, faq)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`DELETE FROM faqs WHERE id = $1`)

	mock.ExpectExec(query).WithArgs(3).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(context.Background(), 3))

	mock.ExpectExec(query).WithArgs(4).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 4), domain.ErrNotFound)

	mock.ExpectExec(query).WithArgs(5).WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Delete(context.Background(), 5))

	assert.NoError(t, mock.ExpectationsWereMet())
}
