package packagerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
)

func TestRepository_ListTypes(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := New(mock)
	query := regexp.QuoteMeta(`SELECT id, name, rank, price FROM package_types ORDER BY rank ASC`)

	t.Run("Ordered tiers", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows([]string{"id", "name", "rank", "price"}).
			AddRow(1, "Starter", 1, int64(5000)).
			AddRow(2, "Bronze", 2, int64(10000)))

		types, err := repo.ListTypes(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []domain.PackageType{
			{ID: 1, Name: "Starter", Rank: 1, Price: 5000},
			{ID: 2, Name: "Bronze", Rank: 2, Price: 10000},
		}, types)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(errors.New("database error"))

		types, err := repo.ListTypes(context.Background())
		assert.Error(t, err)
		assert.Nil(t, types)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
