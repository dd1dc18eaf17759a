package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	// Given: one existing file and one missing
	dir := t.TempDir()
	existing := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(existing, []byte("DOTENV_TEST_BUCKET=uploads\n"), 0o600))
	t.Setenv("DOTENV_TEST_BUCKET", "")
	require.NoError(t, os.Unsetenv("DOTENV_TEST_BUCKET"))

	// When
	loaded, err := loadDotEnv([]string{filepath.Join(dir, "missing.env"), existing})

	// Then
	require.NoError(t, err)
	assert.Equal(t, []string{existing}, loaded)
	assert.Equal(t, "uploads", os.Getenv("DOTENV_TEST_BUCKET"))
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("DOTENV_TEST_REGION=us-east-1\n"), 0o600))
	t.Setenv("DOTENV_TEST_REGION", "eu-west-1")

	_, err := loadDotEnv([]string{path})

	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", os.Getenv("DOTENV_TEST_REGION"))
}

func TestLoadDotEnv_NothingFound(t *testing.T) {
	loaded, err := loadDotEnv([]string{filepath.Join(t.TempDir(), ".env")})

	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadDotEnv_Directory(t *testing.T) {
	// A directory is readable as a path but not as a dotenv file.
	_, err := loadDotEnv([]string{t.TempDir()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load")
}
