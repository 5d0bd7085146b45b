package devenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(prev) })
}

func TestResolvePathInWorkspace(t *testing.T) {
	root, err := GetWorkspaceRoot()
	require.NoError(t, err)

	path, err := ResolvePath("<dev_state>/results.db")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "dev", ".state", "results.db"), path)

	path, err = ResolvePath("/var/lib/results.db")
	require.NoError(t, err)
	require.Equal(t, "/var/lib/results.db", path)
}

func TestResolvePathOutsideWorkspace(t *testing.T) {
	chdir(t, t.TempDir())
	cwd, err := os.Getwd()
	require.NoError(t, err)

	_, err = GetWorkspaceRoot()
	require.ErrorIs(t, err, os.ErrNotExist)

	path, err := ResolvePath("<dev_state>/results.db")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(cwd, ".resultsdb", "results.db"), path)
	require.DirExists(t, filepath.Join(cwd, ".resultsdb"))
}
