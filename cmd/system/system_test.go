package system

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointsCommand(t *testing.T) {
	cmd := NewEndpointsCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "METHOD"))
	assert.Contains(t, out.String(), "/api/analytics/pageview")
	assert.Contains(t, out.String(), "/api/messages")
}

func TestGenDocsCommand(t *testing.T) {
	root := &cobra.Command{Use: "portfolio"}
	root.AddCommand(NewSystemCommand())

	dir := t.TempDir()
	root.SetArgs([]string{"system", "gendocs", "--outdir", dir})
	root.SetOut(&bytes.Buffer{})
	require.NoError(t, root.Execute())

	_, err := os.Stat(filepath.Join(dir, "portfolio_system_endpoints.md"))
	assert.NoError(t, err)
}
