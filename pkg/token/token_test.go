package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	tok, err := issuer.IssueAccess("user-123", "alice@example.com")
	require.NoError(t, err)

	claims, err := issuer.VerifyAccess(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestVerifyAccess_Expired(t *testing.T) {
	issuer := NewIssuer("access-secret", "refresh-secret", time.Second, 24*time.Hour)

	tok, err := issuer.IssueAccess("u1", "u1@example.com")
	require.NoError(t, err)

	_, err = issuer.VerifyAccess(tok)
	require.NoError(t, err)

	time.Sleep(2 * time.Second)

	_, err = issuer.VerifyAccess(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_SecretsAreDistinct(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	access, err := issuer.IssueAccess("u2", "u2@example.com")
	require.NoError(t, err)
	refresh, err := issuer.IssueRefresh("u2", "u2@example.com")
	require.NoError(t, err)

	// An access token must not verify as a refresh token and vice versa.
	_, err = issuer.VerifyRefresh(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = issuer.VerifyAccess(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccess_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("right-secret", "refresh-secret", time.Hour, 24*time.Hour)
	other := NewIssuer("wrong-secret", "refresh-secret", time.Hour, 24*time.Hour)

	tok, err := issuer.IssueAccess("u3", "u3@example.com")
	require.NoError(t, err)

	_, err = other.VerifyAccess(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueRefresh_TokensAreUnique(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	// Back-to-back issuance lands in the same second; the jti must still
	// make each token distinct so sessions can be revoked independently.
	first, err := issuer.IssueRefresh("u4", "u4@example.com")
	require.NoError(t, err)
	second, err := issuer.IssueRefresh("u4", "u4@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	firstClaims, err := issuer.VerifyRefresh(first)
	require.NoError(t, err)
	secondClaims, err := issuer.VerifyRefresh(second)
	require.NoError(t, err)
	assert.NotEmpty(t, firstClaims.ID)
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestVerifyAccess_Malformed(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	_, err := issuer.VerifyAccess("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.VerifyAccess("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
