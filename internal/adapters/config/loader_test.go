package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RastaKolobar/pyre-check/internal/adapters/config"
)

func TestLoad_NoConfigFile_FallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.NewLoader(nil).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.ProjectRoot)
	assert.Equal(t, 4096, cfg.NoCacheTableSize)
}

func TestLoad_DiscoversFileInAncestorDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, config.Filename), []byte(
		"sourceRoots: [\"src\"]\nparallelism: 4\n",
	), 0o600))

	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	cfg, err := config.NewLoader(nil).Load(nested)
	require.NoError(t, err)
	assert.Equal(t, root, cfg.ProjectRoot)
	assert.Equal(t, []string{"src"}, cfg.SourceRoots)
	assert.Equal(t, 4, cfg.Parallelism)
}

func TestLoad_UnsetFieldsFallBackToDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.Filename), []byte(
		"sourceRoots: [\"src\"]\n",
	), 0o600))

	cfg, err := config.NewLoader(nil).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 4096, cfg.NoCacheTableSize)
	assert.Equal(t, 5, cfg.Chunking.PreferredChunksPerWorker)
}
