package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkplan/config"
)

func newTestHasher() *bcryptCodeHasher {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}

	return NewBcryptCodeHasher(cfg).(*bcryptCodeHasher)
}

func TestBcryptCodeHasher_HashAndCheck(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	hash, err := hasher.Hash("4821")
	require.NoError(t, err)
	assert.NotEqual(t, "4821", hash)

	assert.True(t, hasher.Check("4821", hash))
	assert.False(t, hasher.Check("0000", hash))
	assert.False(t, hasher.Check("4821", "not-a-hash"))
}

func TestBcryptCodeHasher_HashesAreSalted(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	first, err := hasher.Hash("4821")
	require.NoError(t, err)
	second, err := hasher.Hash("4821")
	require.NoError(t, err)

	// Same PIN, different salt, different hash. Both still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("4821", first))
	assert.True(t, hasher.Check("4821", second))
}
