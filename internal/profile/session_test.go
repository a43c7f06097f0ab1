package profile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverSession_Stable(t *testing.T) {
	store := openTestStore(t)
	resolver := NewResolver(store)
	ctx := t.Context()

	first, err := resolver.Session(ctx)
	require.NoError(t, err)
	assert.True(t, len(first) > len("sess_"))
	assert.Contains(t, first, "sess_")

	second, err := resolver.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolverSession_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.db")
	ctx := t.Context()

	store, err := Open(path)
	require.NoError(t, err)
	first, err := NewResolver(store).Session(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	second, err := NewResolver(reopened).Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNewSessionID(t *testing.T) {
	a := NewSessionID()
	b := NewSessionID()

	assert.NotEqual(t, a, b)
	assert.Len(t, a, len("sess_")+32)
	assert.NotContains(t, a, "-")
}
