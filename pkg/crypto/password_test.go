package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	// Minimum bcrypt cost keeps the test fast.
	h := NewHasher(4)

	digest, err := h.Hash("pw123")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", digest)

	assert.True(t, h.Verify("pw123", digest))
	assert.False(t, h.Verify("wrong", digest))
}

func TestVerify_MalformedDigest(t *testing.T) {
	t.Parallel()

	h := NewHasher(4)

	// A corrupt digest is a failed verification, not a panic or error.
	assert.False(t, h.Verify("pw123", "not-a-bcrypt-digest"))
	assert.False(t, h.Verify("pw123", ""))
}

func TestNewHasher_CostFloor(t *testing.T) {
	t.Parallel()

	h := NewHasher(0)
	digest, err := h.Hash("pw")
	require.NoError(t, err)
	assert.True(t, h.Verify("pw", digest))
}
