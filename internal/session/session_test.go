package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer(t *testing.T) *Issuer {
	t.Helper()
	i, err := NewIssuer("test-secret", "projex", time.Hour)
	require.NoError(t, err)
	return i
}

func TestNewIssuer_EmptySecret(t *testing.T) {
	_, err := NewIssuer("", "projex", time.Hour)
	assert.Error(t, err)
}

func TestIssueAndParse(t *testing.T) {
	i := newTestIssuer(t)

	raw, err := i.Issue("usr-001", "admin", false)
	require.NoError(t, err)

	claims, err := i.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "usr-001", claims.UserID)
	assert.Equal(t, "usr-001", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.False(t, claims.Guest)
}

func TestParse_GuestFlag(t *testing.T) {
	i := newTestIssuer(t)
	raw, err := i.Issue("guest", "member", true)
	require.NoError(t, err)

	claims, err := i.Parse(raw)
	require.NoError(t, err)
	assert.True(t, claims.Guest)
}

func TestParse_Expired(t *testing.T) {
	i := newTestIssuer(t)
	issued := time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC)
	i.now = func() time.Time { return issued }
	raw, err := i.Issue("usr-001", "admin", false)
	require.NoError(t, err)

	i.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = i.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Rejections(t *testing.T) {
	i := newTestIssuer(t)

	other, err := NewIssuer("other-secret", "projex", time.Hour)
	require.NoError(t, err)
	forged, err := other.Issue("usr-001", "admin", false)
	require.NoError(t, err)

	wrongIssuer, err := NewIssuer("test-secret", "someone-else", time.Hour)
	require.NoError(t, err)
	foreign, err := wrongIssuer.Issue("usr-001", "admin", false)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "usr-001"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": forged,
		"wrong issuer": foreign,
		"alg none":     none,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := i.Parse(raw)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
