package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name    string   `json:"name"`
	Timeout int      `json:"timeout"`
	Items   []string `json:"items"`
}

func writeFile(t testing.TB, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
}

func TestLocalName(t *testing.T) {
	require.Equal(t, "config.local.json5", localName("config.json5"))
	require.Equal(t, filepath.Join("a", "b.local.json5"), localName(filepath.Join("a", "b.json5")))
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")
	writeFile(t, path, `{
  // comments are allowed
  name: "base",
  timeout: 10,
  items: ["a", "b"],
}`)
	writeFile(t, filepath.Join(dir, "config.local.json5"), `{ timeout: 20 }`)

	config, err := ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, testConfig{Name: "base", Timeout: 20, Items: []string{"a", "b"}}, config)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadConfigOr(t *testing.T) {
	defaults := testConfig{Name: "default", Timeout: 30, Items: []string{"x"}}

	config, err := ReadConfigOr(filepath.Join(t.TempDir(), "config.json5"), defaults)
	require.NoError(t, err)
	require.Equal(t, defaults, config)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")
	writeFile(t, path, `{ items: ["y", "z"] }`)

	config, err = ReadConfigOr(path, defaults)
	require.NoError(t, err)
	require.Equal(t, testConfig{Name: "default", Timeout: 30, Items: []string{"y", "z"}}, config)

	writeFile(t, path, `{ name: `)
	_, err = ReadConfigOr(path, defaults)
	require.Error(t, err)
}
