package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, loadEnvFile(""))
	assert.NoError(t, loadEnvFile(filepath.Join(dir, "missing.env")))

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORTFOLIO_TEST_DOTENV=from-file\n"), 0o600))
	t.Setenv("PORTFOLIO_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("PORTFOLIO_TEST_DOTENV"))

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv("PORTFOLIO_TEST_DOTENV"))
}

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{{"http", "start"}, {"system", "gendocs"}, {"system", "endpoints"}} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}
