package auth

//go:generate mockgen -source=jwt.go -destination=mock_jwt.go -package=auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
)

const issuer = "mlmplatform"

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidTokenClaims = errors.New("invalid token claims")
)

type JWTServiceInterface interface {
	GenerateJWT(identity domain.Identity, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Impersonator records the administrator who assumed the token's user.
type Impersonator struct {
	AdminID   int    `json:"admin_id"`
	AdminRole string `json:"admin_role"`
}

type Claims struct {
	UserID       int           `json:"user_id"`
	Role         string        `json:"role"`
	Impersonator *Impersonator `json:"imp,omitempty"`
	jwt.StandardClaims
}

// Identity converts verified claims into a session identity.
func (c *Claims) Identity() (domain.Identity, error) {
	role, err := domain.ParseRole(c.Role)
	if err != nil || c.UserID <= 0 {
		return nil, ErrInvalidTokenClaims
	}
	session := domain.NewSession(c.UserID, role)
	if c.Impersonator == nil {
		return session, nil
	}
	adminRole, err := domain.ParseRole(c.Impersonator.AdminRole)
	if err != nil || c.Impersonator.AdminID <= 0 || !domain.CanImpersonate(adminRole, role) {
		return nil, ErrInvalidTokenClaims
	}
	return domain.NewImpersonation(session, c.Impersonator.AdminID, adminRole), nil
}

type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

func (s *JWTService) GenerateJWT(identity domain.Identity, expirationTime time.Time) (string, error) {
	if identity == nil {
		return "", ErrInvalidTokenClaims
	}
	claims := Claims{
		UserID: identity.UserID(),
		Role:   string(identity.Role()),
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: expirationTime.Unix(),
			Issuer:    issuer,
		},
	}
	if adminID, adminRole, ok := domain.Provenance(identity); ok {
		claims.Impersonator = &Impersonator{AdminID: adminID, AdminRole: string(adminRole)}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 || claims.Issuer != issuer {
		return nil, ErrInvalidTokenClaims
	}

	return claims, nil
}
