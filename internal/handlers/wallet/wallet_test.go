package wallet

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
	"github.com/GlebRadaev/mlmplatform/internal/service/walletservice"
	"github.com/GlebRadaev/mlmplatform/pkg/auth"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestGetWalletInfoHandler(t *testing.T) {
	tests := []struct {
		name         string
		identity     domain.Identity
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody string
	}{
		{
			name:     "Successful retrieval",
			identity: domain.NewSession(1, domain.RoleMember),
			prepareMock: func(service *MockService) {
				service.EXPECT().GetWalletInfo(gomock.Any(), 1).Return(&domain.WalletSummary{
					CompanyWallet:  12550,
					RegisterWallet: 4000,
					BonusWallet:    999,
					Total:          17549,
					IsQualified:    true,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"companyWallet":125.50,"registerWallet":40.00,"bonusWallet":9.99,"totalBalance":175.49,"isQualified":true}`,
		},
		{
			name:     "Impersonation reads the target wallet",
			identity: domain.NewImpersonation(domain.NewSession(10, domain.RoleMember), 1, domain.RoleAdmin),
			prepareMock: func(service *MockService) {
				service.EXPECT().GetWalletInfo(gomock.Any(), 10).Return(&domain.WalletSummary{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"companyWallet":0.00,"registerWallet":0.00,"bonusWallet":0.00,"totalBalance":0.00,"isQualified":false}`,
		},
		{
			name:     "User no longer exists",
			identity: domain.NewSession(1, domain.RoleMember),
			prepareMock: func(service *MockService) {
				service.EXPECT().GetWalletInfo(gomock.Any(), 1).Return(nil, walletservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"User not found"}`,
		},
		{
			name:     "Internal server error",
			identity: domain.NewSession(1, domain.RoleMember),
			prepareMock: func(service *MockService) {
				service.EXPECT().GetWalletInfo(gomock.Any(), 1).Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error"}`,
		},
		{
			name:         "Missing identity",
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"Unauthorized"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := httptest.NewRequest(http.MethodGet, "/api/user/wallet-info", nil)
			if tt.identity != nil {
				r = r.WithContext(auth.WithIdentity(r.Context(), tt.identity))
			}
			w := httptest.NewRecorder()
			handler.GetWalletInfo(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
