package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/jobboard/internal/models"
)

func TestEmailTokensAreTheEmail(t *testing.T) {
	tokens, err := NewTokens("email", "", "", 0)
	require.NoError(t, err)

	tok, err := tokens.Issue(&models.User{Email: "r@example.com", Role: models.RoleRecruiter})
	require.NoError(t, err)
	assert.Equal(t, "r@example.com", tok)

	// any presented value is taken at face value
	email, err := tokens.Resolve("whoever@example.com")
	require.NoError(t, err)
	assert.Equal(t, "whoever@example.com", email)
}

func TestJWTTokensRoundTrip(t *testing.T) {
	tokens, err := NewTokens("jwt", "secret", "jobboard", time.Hour)
	require.NoError(t, err)

	tok, err := tokens.Issue(&models.User{Email: "c@example.com", Role: models.RoleCandidate})
	require.NoError(t, err)
	assert.NotEqual(t, "c@example.com", tok)

	email, err := tokens.Resolve(tok)
	require.NoError(t, err)
	assert.Equal(t, "c@example.com", email)

	mc := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, mc)
	require.NoError(t, err)
	assert.Equal(t, "c@example.com", mc["sub"])
	assert.NotContains(t, mc, "role")
}

func TestJWTTokensRejectTamperedAndExpired(t *testing.T) {
	tokens, err := NewTokens("jwt", "secret", "jobboard", time.Hour)
	require.NoError(t, err)
	jt := tokens.(*JWTTokens)

	issuedAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	jt.now = func() time.Time { return issuedAt }
	tok, err := jt.Issue(&models.User{Email: "c@example.com"})
	require.NoError(t, err)

	_, err = jt.Resolve(tok + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = jt.Resolve("c@example.com")
	assert.ErrorIs(t, err, ErrInvalidToken)

	jt.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = jt.Resolve(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	other, err := NewTokens("jwt", "other-secret", "jobboard", time.Hour)
	require.NoError(t, err)
	_, err = other.Resolve(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokensValidation(t *testing.T) {
	_, err := NewTokens("jwt", "", "", time.Hour)
	assert.Error(t, err)

	_, err = NewTokens("opaque", "", "", time.Hour)
	assert.Error(t, err)
}
