package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	id := uuid.New()
	payload := `{"original_query":"Boeing contracts"}`

	key, err := store.Save(ctx, id, strings.NewReader(payload))
	require.NoError(t, err)
	assert.Contains(t, key, id.String())
	assert.True(t, strings.HasSuffix(key, ".json"))

	rc, err := store.Load(ctx, key)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))

	require.NoError(t, store.Delete(ctx, key))

	_, err = store.Load(ctx, key)
	assert.Error(t, err)
}

func TestLocalStorageDeleteMissingKeyIsQuiet(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "2026/01/01/missing.json"))
}

func TestNewRejectsUnknownType(t *testing.T) {
	_, err := New(Config{Type: "ftp"})
	assert.Error(t, err)
}

func TestNewRequiresBucketForS3(t *testing.T) {
	_, err := New(Config{Type: TypeS3})
	assert.Error(t, err)
}
