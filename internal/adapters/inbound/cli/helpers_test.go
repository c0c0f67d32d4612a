package cli_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abdidvp/prodcat/internal/adapters/inbound/cli"
	"github.com/abdidvp/prodcat/internal/domain"
)

const testConfig = `store:
  backend: file
  dir: data
latency:
  list: 0s
  add: 0s
  update: 0s
  delete: 0s
log:
  level: error
`

// newCatalogDir returns a config directory with a file-backed, zero-latency catalog.
func newCatalogDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".prodcat.yaml"), []byte(testConfig), 0644))
	return dir
}

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--config", dir}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func listJSON(t *testing.T, dir string) []domain.Product {
	t.Helper()
	out, err := run(t, dir, "list", "--json")
	require.NoError(t, err)

	var products []domain.Product
	require.NoError(t, json.Unmarshal([]byte(out), &products))
	return products
}

func codes(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Code
	}
	return out
}
