package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, InitDB(filepath.Join(t.TempDir(), "test.db")))
}

func TestSnapshotRoundTrip(t *testing.T) {
	initTestDB(t)

	payload := map[string]interface{}{"states": 51}
	require.NoError(t, SaveSnapshot("snap-1", "complaints", "table", nil, payload))

	got, err := GetSnapshot("snap-1")
	require.NoError(t, err)
	assert.Equal(t, "snap-1", got.ID)
	assert.Equal(t, "complaints", got.Dataset)
	assert.Equal(t, "table", got.View)
	assert.NotNil(t, got.Payload)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestGetSnapshotUnknownID(t *testing.T) {
	initTestDB(t)

	_, err := GetSnapshot("missing")
	assert.Error(t, err)
}

func TestListSnapshotsNewestFirstWithLimit(t *testing.T) {
	initTestDB(t)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, SaveSnapshot(id, "ratings", "top", nil, []string{}))
	}

	snaps, err := ListSnapshots(2)
	require.NoError(t, err)
	assert.Len(t, snaps, 2)
	// List omits payloads.
	assert.Nil(t, snaps[0].Payload)
}

func TestSaveLoadError(t *testing.T) {
	initTestDB(t)

	require.NoError(t, SaveLoadError("data/cybercrime.csv", errors.New("bad header")))
	assert.NoError(t, SaveLoadError("data/cybercrime.csv", nil))
}
