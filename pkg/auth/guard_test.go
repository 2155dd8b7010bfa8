package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
)

func TestGuard_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := NewMockJWTServiceInterface(ctrl)
	guard := NewGuard(tokens)

	tests := []struct {
		name        string
		token       string
		prepareMock func()
		expected    domain.Identity
		expectOK    bool
	}{
		{
			name:        "Absent token",
			token:       "",
			prepareMock: func() {},
		},
		{
			name:  "Verification error",
			token: "bad",
			prepareMock: func() {
				tokens.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid"))
			},
		},
		{
			name:  "Verification panics",
			token: "boom",
			prepareMock: func() {
				tokens.EXPECT().ValidateToken("boom").DoAndReturn(func(string) (*Claims, error) {
					panic("library fault")
				})
			},
		},
		{
			name:  "Claims with unknown role",
			token: "odd",
			prepareMock: func() {
				tokens.EXPECT().ValidateToken("odd").Return(&Claims{UserID: 1, Role: "ROOT"}, nil)
			},
		},
		{
			name:  "Normal session",
			token: "ok",
			prepareMock: func() {
				tokens.EXPECT().ValidateToken("ok").Return(&Claims{UserID: 5, Role: "MEMBER"}, nil)
			},
			expected: domain.NewSession(5, domain.RoleMember),
			expectOK: true,
		},
		{
			name:  "Impersonation session",
			token: "imp",
			prepareMock: func() {
				tokens.EXPECT().ValidateToken("imp").Return(&Claims{
					UserID:       5,
					Role:         "MEMBER",
					Impersonator: &Impersonator{AdminID: 1, AdminRole: "ADMIN"},
				}, nil)
			},
			expected: domain.NewImpersonation(domain.NewSession(5, domain.RoleMember), 1, domain.RoleAdmin),
			expectOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			identity, ok := guard.Resolve(tt.token)

			assert.Equal(t, tt.expectOK, ok)
			assert.Equal(t, tt.expected, identity)
		})
	}
}

func TestGuard_ResolveRealTokens(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	guard := NewGuard(jwtService)

	expired, _ := jwtService.GenerateJWT(domain.NewSession(1, domain.RoleMember), time.Now().Add(-time.Minute))
	_, ok := guard.Resolve(expired)
	assert.False(t, ok)

	valid, _ := jwtService.GenerateJWT(domain.NewSession(1, domain.RoleMember), time.Now().Add(time.Minute))
	identity, ok := guard.Resolve(valid)
	assert.True(t, ok)
	assert.Equal(t, 1, identity.UserID())
}
