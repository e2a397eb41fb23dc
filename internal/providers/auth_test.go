package providers_test

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/google/uuid"

	"retail_admin/internal/providers"
)

func newTestAuth() providers.AuthProvider {
	return providers.NewAuthProvider("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	c := qt.New(t)
	auth := newTestAuth()

	userID := uuid.New()
	token, err := auth.GenerateAccessToken(userID, "admin")
	c.Assert(err, qt.IsNil)
	c.Assert(token, qt.Not(qt.Equals), "")

	claims, err := auth.VerifyAccessToken(token)
	c.Assert(err, qt.IsNil)
	c.Assert(claims, qt.IsNotNil)
	c.Assert(claims.UserID, qt.Equals, userID.String())
	c.Assert(claims.Role, qt.Equals, "admin")
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	c := qt.New(t)
	auth := newTestAuth()

	userID := uuid.New()
	token, err := auth.GenerateRefreshToken(userID, "retailer")
	c.Assert(err, qt.IsNil)

	claims, err := auth.VerifyRefreshToken(token)
	c.Assert(err, qt.IsNil)
	c.Assert(claims, qt.IsNotNil)
	c.Assert(claims.UserID, qt.Equals, userID.String())
}

// An access token must not pass refresh verification and vice versa: the
// two token kinds are signed with different secrets.
func TestTokensAreNotInterchangeable(t *testing.T) {
	c := qt.New(t)
	auth := newTestAuth()

	access, err := auth.GenerateAccessToken(uuid.New(), "employee")
	c.Assert(err, qt.IsNil)

	claims, err := auth.VerifyRefreshToken(access)
	c.Assert(err, qt.IsNil)
	c.Assert(claims, qt.IsNil)

	refresh, err := auth.GenerateRefreshToken(uuid.New(), "employee")
	c.Assert(err, qt.IsNil)

	claims, err = auth.VerifyAccessToken(refresh)
	c.Assert(err, qt.IsNil)
	c.Assert(claims, qt.IsNil)
}

func TestExpiredTokenRejected(t *testing.T) {
	c := qt.New(t)
	auth := providers.NewAuthProvider("access-secret", "refresh-secret", -time.Minute, -time.Minute)

	token, err := auth.GenerateAccessToken(uuid.New(), "admin")
	c.Assert(err, qt.IsNil)

	claims, err := auth.VerifyAccessToken(token)
	c.Assert(err, qt.IsNil)
	c.Assert(claims, qt.IsNil)
}

func TestGarbageTokenRejected(t *testing.T) {
	c := qt.New(t)
	auth := newTestAuth()

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		claims, err := auth.VerifyAccessToken(token)
		c.Assert(err, qt.IsNil)
		c.Assert(claims, qt.IsNil)
	}
}
