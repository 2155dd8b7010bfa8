package packagerepo

import (
	"context"

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

func (r *Repository) ListTypes(ctx context.Context) ([]domain.PackageType, error) {
	query := `
		SELECT id, name, rank, price
		FROM package_types
		ORDER BY rank ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get package types", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var types []domain.PackageType
	for rows.Next() {
		var (
			pt    domain.PackageType
			price int64
		)
		if err := rows.Scan(&pt.ID, &pt.Name, &pt.Rank, &price); err != nil {
			zap.L().Error("can't scan package type row", zap.Error(err))
			return nil, err
		}
		pt.Price = domain.Money(price)
		types = append(types, pt)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate package types", zap.Error(err))
		return nil, err
	}
	return types, nil
}
