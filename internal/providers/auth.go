package providers

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is carried by both access and refresh tokens.
type TokenClaims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthProvider signs and verifies the stateless session tokens. There is
// no server-side revocation: a token is valid until its expiry.
type AuthProvider interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
	GenerateRefreshToken(userID uuid.UUID, role string) (string, error)
	VerifyAccessToken(token string) (*TokenClaims, error)
	VerifyRefreshToken(token string) (*TokenClaims, error)
}

type authProvider struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthProvider(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) AuthProvider {
	return &authProvider{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (p *authProvider) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	return p.sign(userID, role, p.accessSecret, p.accessTTL)
}

func (p *authProvider) GenerateRefreshToken(userID uuid.UUID, role string) (string, error) {
	return p.sign(userID, role, p.refreshSecret, p.refreshTTL)
}

func (p *authProvider) sign(userID uuid.UUID, role string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID: userID.String(),
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifyAccessToken returns (nil, nil) for any invalid or expired token;
// the caller treats absence of claims as an authentication failure.
func (p *authProvider) VerifyAccessToken(token string) (*TokenClaims, error) {
	return verify(token, p.accessSecret)
}

func (p *authProvider) VerifyRefreshToken(token string) (*TokenClaims, error) {
	return verify(token, p.refreshSecret)
}

func verify(token string, secret []byte) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, nil
	}
	return claims, nil
}
