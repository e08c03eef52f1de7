package scan

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, path string, size int) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func TestProbeSeparatesFilesFromSubdirs(t *testing.T) {
	dir := t.TempDir()

	writeTestFile(t, filepath.Join(dir, "a.jpg"), 1000)
	writeTestFile(t, filepath.Join(dir, "b.TXT"), 500)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	result, accessErr := probe(dir, false)
	require.Nil(t, accessErr)

	require.Len(t, result.files, 2)
	require.Len(t, result.subdirs, 1)
	assert.Equal(t, filepath.Join(dir, "sub"), result.subdirs[0])

	sizes := map[string]int64{}
	for _, f := range result.files {
		sizes[f.Ext] = f.Size
	}

	// Extensions are lower-cased by the probe.
	assert.Equal(t, int64(1000), sizes[".jpg"])
	assert.Equal(t, int64(500), sizes[".txt"])
}

func TestProbeDoesNotRecurse(t *testing.T) {
	dir := t.TempDir()

	writeTestFile(t, filepath.Join(dir, "sub", "nested.txt"), 100)

	result, accessErr := probe(dir, false)
	require.Nil(t, accessErr)

	assert.Empty(t, result.files)
	assert.Equal(t, []string{filepath.Join(dir, "sub")}, result.subdirs)
}

func TestProbeMissingDirectory(t *testing.T) {
	result, accessErr := probe(filepath.Join(t.TempDir(), "gone"), false)

	require.NotNil(t, accessErr)
	assert.Equal(t, AccessNotFound, accessErr.Kind)
	assert.Empty(t, result.files)
}

func TestProbePermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not honored on windows")
	}

	if os.Geteuid() == 0 {
		t.Skip("running as root, permission checks are bypassed")
	}

	dir := t.TempDir()
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Mkdir(locked, 0o755))
	require.NoError(t, os.Chmod(locked, 0o000))

	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	_, accessErr := probe(locked, false)

	require.NotNil(t, accessErr)
	assert.Equal(t, AccessPermission, accessErr.Kind)
}

func TestProbeSymlinkHandling(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	writeTestFile(t, target, 250)
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "link.txt")))

	result, accessErr := probe(dir, false)
	require.Nil(t, accessErr)
	assert.Len(t, result.files, 1, "symlinks ignored by default")

	result, accessErr = probe(dir, true)
	require.Nil(t, accessErr)
	assert.Len(t, result.files, 2, "symlinks resolved when following")
}
