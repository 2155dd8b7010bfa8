package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
	"github.com/GlebRadaev/mlmplatform/internal/service/authservice"
	pkgauth "github.com/GlebRadaev/mlmplatform/pkg/auth"
	"github.com/GlebRadaev/mlmplatform/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, pkgauth.CookieConfig{TTL: time.Hour})
	return handler, service
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == pkgauth.CookieName {
			return c
		}
	}
	return nil
}

func TestRegisterHandler(t *testing.T) {
	const validBody = `{"username":"alice","email":"alice@example.com","password":"password123","firstName":"Alice","lastName":"Smith","sponsor":"bob"}`
	input := authservice.RegisterInput{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "password123",
		FirstName: "Alice",
		LastName:  "Smith",
		Sponsor:   "bob",
	}

	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
		expectCookie  bool
	}{
		{
			name: "Successful registration",
			body: validBody,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), input).Return(&domain.User{ID: 1, Role: domain.RoleMember}, nil)
				service.EXPECT().GenerateToken(domain.NewSession(1, domain.RoleMember)).Return("jwt-token", nil)
			},
			expectedCode: http.StatusOK,
			expectCookie: true,
		},
		{
			name: "Username taken",
			body: validBody,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), input).Return(nil, authservice.ErrUsernameTaken)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: authservice.ErrUsernameTaken.Error(),
		},
		{
			name: "Unknown sponsor",
			body: validBody,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), input).Return(nil, authservice.ErrSponsorNotFound)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: authservice.ErrSponsorNotFound.Error(),
		},
		{
			name: "Storage fault is not leaked",
			body: validBody,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), input).Return(nil, errors.New("pq: connection refused"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name: "Token error",
			body: validBody,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), input).Return(&domain.User{ID: 1, Role: domain.RoleMember}, nil)
				service.EXPECT().GenerateToken(gomock.Any()).Return("", errors.New("signing error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
		{
			name:          "Invalid request body",
			body:          `{"username":`,
			prepareMock:   func(*MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Validation failure",
			body:          `{"username":"al","email":"not-an-email","password":"short","firstName":"A","lastName":"B"}`,
			prepareMock:   func(*MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Register(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
			cookie := sessionCookie(w)
			if tt.expectCookie {
				require.NotNil(t, cookie)
				assert.Equal(t, "jwt-token", cookie.Value)
				assert.True(t, cookie.HttpOnly)
			} else {
				assert.Nil(t, cookie)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"login":"alice@example.com","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(gomock.Any(), "alice@example.com", "password123").Return(&domain.User{ID: 1, Role: domain.RoleAdmin}, nil)
				service.EXPECT().GenerateToken(domain.NewSession(1, domain.RoleAdmin)).Return("jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"alice","password":"wrong-password"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(gomock.Any(), "alice", "wrong-password").Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Inactive account",
			body: `{"login":"alice","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(gomock.Any(), "alice", "password123").Return(nil, authservice.ErrAccountInactive)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Storage fault",
			body: `{"login":"alice","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(gomock.Any(), "alice", "password123").Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "Missing password",
			body:          `{"login":"alice"}`,
			prepareMock:   func(*MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			assert.NotNil(t, sessionCookie(w))
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	handler, _ := NewMock(t)

	r := httptest.NewRequest(http.MethodPost, "/api/user/logout", nil)
	w := httptest.NewRecorder()
	handler.Logout(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
