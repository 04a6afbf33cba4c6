package middleware

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFileHash(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.css")
	require.NoError(t, os.WriteFile(tmpFile, []byte("body { color: red; }"), 0644))

	hash := computeFileHash(tmpFile)
	assert.Len(t, hash, 8)

	assert.Empty(t, computeFileHash("non_existent_file.css"))
}

func TestInitAssetVersions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "style.css"), []byte("body{}"), 0644))

	InitAssetVersions(dir)

	assert.Len(t, AssetVersion("css/style.css"), 8)
	// missing files fall back to "1"
	assert.Equal(t, "1", AssetVersion("js/app.js"))
	assert.Equal(t, "1", AssetVersion("never/hashed.js"))
	assert.Equal(t, "/static/css/style.css?v="+AssetVersion("css/style.css"), AssetURL("css/style.css"))
}
