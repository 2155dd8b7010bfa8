package packages

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
)

func TestListPackagesHandler(t *testing.T) {
	tests := []struct {
		name         string
		types        []domain.PackageType
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name: "Tiers",
			types: []domain.PackageType{
				{ID: 1, Name: "Starter", Rank: 1, Price: 5000},
				{ID: 2, Name: "Bronze", Rank: 2, Price: 10050},
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":1,"name":"Starter","rank":1,"price":50.00},{"id":2,"name":"Bronze","rank":2,"price":100.50}]`,
		},
		{
			name:         "No tiers",
			types:        []domain.PackageType{},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:         "Internal server error",
			err:          errors.New("database error"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := NewMockService(ctrl)
			service.EXPECT().ListTypes(gomock.Any()).Return(tt.types, tt.err)

			w := httptest.NewRecorder()
			New(service).ListPackages(w, httptest.NewRequest(http.MethodGet, "/api/packages", nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
