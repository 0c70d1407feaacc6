package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader_Success(t *testing.T) {
	tmpDir := t.TempDir()

	loader, err := NewLoader(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, tmpDir, loader.Dir())
}

func TestNewLoader_DefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	loader, err := NewLoader("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".bucketeer"), loader.Dir())
}

func TestLoader_Load_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "settings")
	loader, err := NewLoader(dir)
	require.NoError(t, err)

	kv, err := loader.Load(context.Background(), ".settings.dat")

	require.NoError(t, err)
	require.NotNil(t, kv)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, ".settings.dat"), kv.(*Store).Path())
}

func TestLoader_Load_AbsolutePath(t *testing.T) {
	loader, err := NewLoader(t.TempDir())
	require.NoError(t, err)

	abs := filepath.Join(t.TempDir(), "elsewhere.dat")
	kv, err := loader.Load(context.Background(), abs)

	require.NoError(t, err)
	assert.Equal(t, abs, kv.(*Store).Path())
}

func TestStore_SetAndGet(t *testing.T) {
	ctx := context.Background()
	store, err := Open(filepath.Join(t.TempDir(), ".settings.dat"))
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "selectedAwsProfile", "dev"))

	val, ok, err := store.Get(ctx, "selectedAwsProfile")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dev", val)
}

func TestStore_Get_NotFound(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), ".settings.dat"))
	require.NoError(t, err)

	val, ok, err := store.Get(context.Background(), "nonexistent")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestStore_SetDoesNotWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".settings.dat")
	store, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, store.Set(context.Background(), "isEditMode", true))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestStore_Persistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), ".settings.dat")

	store1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store1.Set(ctx, "isEditMode", true))
	require.NoError(t, store1.Set(ctx, "selectedAwsProfile", "prod"))
	require.NoError(t, store1.Save(ctx))

	store2, err := Open(path)
	require.NoError(t, err)

	editMode, ok, err := store2.Get(ctx, "isEditMode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, true, editMode)

	profile, ok, err := store2.Get(ctx, "selectedAwsProfile")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "prod", profile)
}

func TestStore_FilePermissions(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), ".settings.dat")
	store, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "isEditMode", false))
	require.NoError(t, store.Save(ctx))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, ".settings.dat"))
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "isEditMode", true))
	require.NoError(t, store.Save(ctx))
	require.NoError(t, store.Save(ctx))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".settings.dat", entries[0].Name())
}

func TestStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".settings.dat")
	require.NoError(t, os.WriteFile(path, []byte{}, 0600))

	store, err := Open(path)
	require.NoError(t, err)

	val, ok, err := store.Get(context.Background(), "any_key")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestStore_HandWrittenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".settings.dat")
	content := "isEditMode = true\nselectedAwsProfile = \"sandbox\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	store, err := Open(path)
	require.NoError(t, err)

	val, ok, err := store.Get(context.Background(), "selectedAwsProfile")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "sandbox", val)
}

func TestStore_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".settings.dat")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0600))

	_, err := Open(path)

	assert.Error(t, err)
}

func TestStore_Concurrency(t *testing.T) {
	ctx := context.Background()
	store, err := Open(filepath.Join(t.TempDir(), ".settings.dat"))
	require.NoError(t, err)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			_ = store.Set(ctx, "selectedAwsProfile", string(rune('a'+id)))
			_, _, _ = store.Get(ctx, "selectedAwsProfile")
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestStore_ConcurrentSaveKeepsEveryKey(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	padding := strings.Repeat("x", 1<<20)

	for round := 0; round < 20; round++ {
		path := filepath.Join(dir, fmt.Sprintf("round-%d.dat", round))
		store, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, store.Set(ctx, "padding", padding))

		var wg sync.WaitGroup
		for _, key := range []string{"isEditMode", "selectedAwsProfile"} {
			wg.Add(1)
			go func(key string) {
				defer wg.Done()
				assert.NoError(t, store.Set(ctx, key, key))
				assert.NoError(t, store.Save(ctx))
			}(key)
		}
		wg.Wait()

		reopened, err := Open(path)
		require.NoError(t, err)
		for _, key := range []string{"isEditMode", "selectedAwsProfile"} {
			val, ok, err := reopened.Get(ctx, key)
			require.NoError(t, err)
			require.True(t, ok, "round %d lost %s", round, key)
			assert.Equal(t, key, val)
		}
	}
}
