package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseUrl string `json:"base_url"`
	Proxy   struct {
		Host string `json:"host"`
		Port int    `json:"port"`
	} `json:"proxy"`
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "nope.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scraper.json5")
	err := os.WriteFile(path, []byte(`{
		// comments are allowed
		base_url: "https://list.am",
		proxy: { host: "proxy.internal", port: 8080 },
	}`), 0600)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, "https://list.am", cfg.BaseUrl)
	require.Equal(t, "proxy.internal", cfg.Proxy.Host)
	require.Equal(t, 8080, cfg.Proxy.Port)
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(
		filepath.Join(dir, "scraper.json5"),
		[]byte(`{ base_url: "https://list.am", proxy: { host: "a", port: 1 } }`),
		0600,
	)
	require.NoError(t, err)
	err = os.WriteFile(
		filepath.Join(dir, "scraper.local.json5"),
		[]byte(`{ proxy: { host: "b", port: 2 } }`),
		0600,
	)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "scraper.json5"))
	require.NoError(t, err)
	require.Equal(t, "https://list.am", cfg.BaseUrl)
	require.Equal(t, "b", cfg.Proxy.Host)
	require.Equal(t, 2, cfg.Proxy.Port)
}
