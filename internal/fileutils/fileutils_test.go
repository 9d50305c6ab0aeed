package fileutils_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/vx-finance/internal/fileutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("test"), 0600))

	assert.True(t, fileutils.FileExists(testFile))
	assert.False(t, fileutils.FileExists(filepath.Join(tmpDir, "missing.txt")))
	assert.False(t, fileutils.FileExists(tmpDir))
	assert.True(t, fileutils.DirectoryExists(tmpDir))
	assert.False(t, fileutils.DirectoryExists(testFile))
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, fileutils.EnsureDirectoryExists(dir))
	assert.True(t, fileutils.DirectoryExists(dir))
	require.NoError(t, fileutils.EnsureDirectoryExists(dir))
	require.NoError(t, fileutils.EnsureDirectoryExists(""))
}

func TestReadFile_Missing(t *testing.T) {
	_, err := fileutils.ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data.json")

	require.NoError(t, fileutils.WriteFile(path, []byte(`[1]`), 0644))
	require.NoError(t, fileutils.WriteFile(path, []byte(`[2]`), 0644))

	data, err := fileutils.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `[2]`, string(data))

	// No temporary files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestListAndRemoveFilesWithExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.json", "b.json", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600))
	}

	files, err := fileutils.ListFilesWithExtension(dir, ".json")
	require.NoError(t, err)
	assert.Len(t, files, 2)

	require.NoError(t, fileutils.RemoveFilesWithExtension(dir, ".json"))
	files, err = fileutils.ListFilesWithExtension(dir, ".json")
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.True(t, fileutils.FileExists(filepath.Join(dir, "c.txt")))

	missing, err := fileutils.ListFilesWithExtension(filepath.Join(dir, "missing"), ".json")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
