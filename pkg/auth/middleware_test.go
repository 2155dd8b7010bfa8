package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
)

func TestAuthenticate(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	mw := NewMiddleware(NewGuard(jwtService))

	valid, err := jwtService.GenerateJWT(domain.NewSession(3, domain.RoleMember), time.Now().Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name         string
		prepare      func(r *http.Request)
		expectedCode int
	}{
		{
			name:         "No credential",
			prepare:      func(r *http.Request) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Garbage cookie",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Valid cookie",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: CookieName, Value: valid})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Valid bearer header",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+valid)
			},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen domain.Identity
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = IdentityFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(r)
			w := httptest.NewRecorder()

			mw.Authenticate(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, domain.NewSession(3, domain.RoleMember), seen)
			} else {
				assert.Nil(t, seen)
			}
		})
	}
}

func TestRequire(t *testing.T) {
	tests := []struct {
		name         string
		identity     domain.Identity
		expectedCode int
	}{
		{name: "No identity", identity: nil, expectedCode: http.StatusUnauthorized},
		{name: "Member", identity: domain.NewSession(1, domain.RoleMember), expectedCode: http.StatusUnauthorized},
		{name: "Admin", identity: domain.NewSession(1, domain.RoleAdmin), expectedCode: http.StatusOK},
		{name: "Super admin", identity: domain.NewSession(1, domain.RoleSuperAdmin), expectedCode: http.StatusOK},
		{
			name:         "Admin impersonating member",
			identity:     domain.NewImpersonation(domain.NewSession(2, domain.RoleMember), 1, domain.RoleAdmin),
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.identity != nil {
				r = r.WithContext(WithIdentity(r.Context(), tt.identity))
			}
			w := httptest.NewRecorder()

			Require(domain.CanAdminister)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedCode == http.StatusOK, called)
		})
	}
}

func TestSessionCookies(t *testing.T) {
	cfg := CookieConfig{TTL: time.Hour, Secure: true}

	w := httptest.NewRecorder()
	SetSessionCookie(w, "token", cfg)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, "token", cookies[0].Value)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)

	w = httptest.NewRecorder()
	ClearSessionCookie(w, cfg)
	cookies = w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}
