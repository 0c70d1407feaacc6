package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".settings.dat")
	store, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })

	return store, path
}

func TestStore_Get_NotFound(t *testing.T) {
	store, _ := setupTestStore(t)

	val, ok, err := store.Get(context.Background(), "isEditMode")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestStore_SetAndGet_BeforeSave(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStore(t)

	require.NoError(t, store.Set(ctx, "selectedAwsProfile", "dev"))

	val, ok, err := store.Get(ctx, "selectedAwsProfile")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dev", val)
}

func TestStore_Persistence(t *testing.T) {
	ctx := context.Background()
	store1, path := setupTestStore(t)

	require.NoError(t, store1.Set(ctx, "isEditMode", true))
	require.NoError(t, store1.Set(ctx, "selectedAwsProfile", "prod"))
	require.NoError(t, store1.Save(ctx))

	store2, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer store2.Close()

	editMode, ok, err := store2.Get(ctx, "isEditMode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, true, editMode)

	profile, ok, err := store2.Get(ctx, "selectedAwsProfile")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "prod", profile)
}

func TestStore_UnsavedNotPersisted(t *testing.T) {
	ctx := context.Background()
	store1, path := setupTestStore(t)

	require.NoError(t, store1.Set(ctx, "isEditMode", true))

	store2, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer store2.Close()

	_, ok, err := store2.Get(ctx, "isEditMode")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Save_Overwrites(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStore(t)

	require.NoError(t, store.Set(ctx, "selectedAwsProfile", "dev"))
	require.NoError(t, store.Save(ctx))
	require.NoError(t, store.Set(ctx, "selectedAwsProfile", "prod"))
	require.NoError(t, store.Save(ctx))

	val, ok, err := store.Get(ctx, "selectedAwsProfile")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "prod", val)
}

func TestStore_Save_NothingPending(t *testing.T) {
	store, _ := setupTestStore(t)

	assert.NoError(t, store.Save(context.Background()))
}

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")
	loader, err := NewLoader(dir)
	require.NoError(t, err)
	defer loader.Close()

	kv, err := loader.Load(ctx, ".settings.dat")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, ".settings.dat"), kv.(*Store).Path())
	require.NoError(t, kv.Set(ctx, "isEditMode", false))
	require.NoError(t, kv.Save(ctx))
}

func TestLoader_Close(t *testing.T) {
	loader, err := NewLoader(t.TempDir())
	require.NoError(t, err)

	_, err = loader.Load(context.Background(), "a.dat")
	require.NoError(t, err)
	_, err = loader.Load(context.Background(), "b.dat")
	require.NoError(t, err)

	assert.NoError(t, loader.Close())
}

func TestOpen_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Open(ctx, filepath.Join(t.TempDir(), ".settings.dat"))

	assert.ErrorIs(t, err, context.Canceled)
}
