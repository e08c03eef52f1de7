package scan

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateDirectories(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "a", "f.txt"), 1)
	writeTestFile(t, filepath.Join(root, "a", "b", "g.txt"), 1)
	writeTestFile(t, filepath.Join(root, "c", "h.txt"), 1)

	count, err := EstimateDirectories(context.Background(), root)
	require.NoError(t, err)

	// root, a, a/b, c
	assert.Equal(t, int64(4), count)
}

func TestEstimateDirectoriesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := EstimateDirectories(ctx, t.TempDir())
	require.ErrorIs(t, err, context.Canceled)
}
