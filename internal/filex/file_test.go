package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesNestedDirectories(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "data", "nested", "database.json")

	require.NoError(t, EnsureParentDir(target))

	fi, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureParentDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "data")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o660))

	err := EnsureParentDir(filepath.Join(blocker, "database.json"))
	require.Error(t, err, "should fail when a file sits where the directory should be")
}

func TestWriteFileAtomic_CreatesAndReplaces(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "store", "database.json")

	require.NoError(t, WriteFileAtomic(target, []byte(`{"v":1}`), 0o600))
	got, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, `{"v":1}`, string(got))

	require.NoError(t, WriteFileAtomic(target, []byte(`{"v":2}`), 0o600))
	got, err = os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, `{"v":2}`, string(got))

	if runtime.GOOS != "windows" {
		fi, err := os.Stat(target)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
	}
}

func TestWriteFileAtomic_LeavesNoTempFiles(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "database.json")

	for i := 0; i < 5; i++ {
		require.NoError(t, WriteFileAtomic(target, []byte("x"), 0o600))
	}

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	for _, e := range entries {
		require.False(t, strings.Contains(e.Name(), ".tmp-"), "leftover temp file %s", e.Name())
	}
	require.Len(t, entries, 1)
}

func TestWriteFileAtomic_TargetIsDirectory(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "database.json")
	require.NoError(t, os.Mkdir(target, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), []byte("x"), 0o600))

	err := WriteFileAtomic(target, []byte("x"), 0o600)
	require.Error(t, err)

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file must be cleaned up on failure")
}
