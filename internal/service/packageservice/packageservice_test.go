package packageservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
)

func TestListTypes(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)

	tiers := []domain.PackageType{
		{ID: 1, Name: "Starter", Rank: 1, Price: 5000},
		{ID: 2, Name: "Bronze", Rank: 2, Price: 10000},
	}
	repo.EXPECT().ListTypes(ctx).Return(tiers, nil)
	result, err := service.ListTypes(ctx)
	assert.NoError(t, err)
	assert.Equal(t, tiers, result)

	repo.EXPECT().ListTypes(ctx).Return(nil, errors.New("database error"))
	result, err = service.ListTypes(ctx)
	assert.Error(t, err)
	assert.Nil(t, result)
}
