package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.hcl"))
	writeFile(t, filepath.Join(root, "nested", "b.HCL"))
	writeFile(t, filepath.Join(root, "nested", "c.yaml"))
	writeFile(t, filepath.Join(root, "readme.md"))

	files, err := FindFilesByExtension(root, ".hcl")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "nested", "b.HCL"),
	}, files)

	files, err = FindFilesByExtension(root, ".yaml", ".yml")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "nested", "c.yaml")}, files)
}

func TestFindFilesByExtension_PanicsWithoutExtension(t *testing.T) {
	assert.Panics(t, func() { _, _ = FindFilesByExtension(t.TempDir()) })
}

func TestExpand(t *testing.T) {
	root := t.TempDir()
	explicit := filepath.Join(root, "graph.txt")
	writeFile(t, explicit)
	writeFile(t, filepath.Join(root, "dir", "one.hcl"))

	files, err := Expand([]string{explicit, filepath.Join(root, "dir"), explicit}, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{explicit, filepath.Join(root, "dir", "one.hcl")}, files)

	_, err = Expand([]string{filepath.Join(root, "missing.hcl")}, ".hcl")
	assert.ErrorContains(t, err, "missing.hcl")
}
