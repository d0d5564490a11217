package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSeededLookup(t *testing.T) {
	store := NewMemoryStore(map[string]string{"dev-token": "acc-123"})

	id, err := store.Lookup(context.Background(), "dev-token")
	require.NoError(t, err)
	assert.Equal(t, "acc-123", id)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore(nil)

	id, err := store.Lookup(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestMemoryStoreMint(t *testing.T) {
	store := NewMemoryStore(nil)

	token := store.Mint("acc-456")
	require.NotEmpty(t, token)

	id, err := store.Lookup(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "acc-456", id)

	// Tokens are unique per mint.
	assert.NotEqual(t, token, store.Mint("acc-456"))
}

func TestIdentityContext(t *testing.T) {
	ctx := context.Background()

	_, ok := IdentityFrom(ctx)
	assert.False(t, ok)

	ctx = WithIdentity(ctx, "acc-789")
	id, ok := IdentityFrom(ctx)
	require.True(t, ok)
	assert.Equal(t, "acc-789", id)

	// An empty identity is the same as no identity.
	_, ok = IdentityFrom(WithIdentity(context.Background(), ""))
	assert.False(t, ok)
}
