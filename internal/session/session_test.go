package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarker(t *testing.T) {
	m := NewMarker(filepath.Join(t.TempDir(), "current_user.txt"))

	_, ok, err := m.Current()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Save("alice"))
	name, ok, err := m.Current()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", name)

	require.NoError(t, m.Clear())
	require.NoError(t, m.Clear())
	_, ok, err = m.Current()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMarker_TrimsLegacyContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "current_user.txt")
	require.NoError(t, os.WriteFile(path, []byte("bob  \r\n"), 0o644))

	name, ok, err := NewMarker(path).Current()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "bob", name)
}

func TestRevocations(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRevocations()
	r.now = func() time.Time { return now }

	r.Revoke("a", now.Add(time.Hour))
	r.Revoke("b", now.Add(time.Minute))

	revoked, err := r.IsRevoked(context.Background(), "a")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = r.IsRevoked(context.Background(), "unknown")
	require.NoError(t, err)
	assert.False(t, revoked)

	now = now.Add(10 * time.Minute)
	assert.Equal(t, 1, r.CleanupExpired())

	revoked, err = r.IsRevoked(context.Background(), "b")
	require.NoError(t, err)
	assert.False(t, revoked)
}
