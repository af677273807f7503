package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masnyjimmy/respsync/reconcile"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".respsync.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, "_handler.go", cfg.HandlerSuffix)
	assert.Equal(t, "respond.Response", cfg.ResponseType)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
root: internal/api
handlerSuffix: _endpoint.go
placeholder: "FIXME: document this response"
helpers:
  Teapot: NotImplemented
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "internal/api", cfg.Root)
	assert.Equal(t, "_endpoint.go", cfg.HandlerSuffix)
	assert.Equal(t, "respond.Response", cfg.ResponseType)
	assert.Equal(t, "FIXME: document this response", cfg.Placeholder)

	helpers, err := cfg.HelperCodes()
	require.NoError(t, err)
	assert.Equal(t, map[string]reconcile.Code{"Teapot": reconcile.NotImplemented}, helpers)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "rooot: typo\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "root: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestHelperCodes_UnknownCodeName(t *testing.T) {
	cfg := Default()
	cfg.Helpers = map[string]string{"Teapot": "ImATeapot"}

	_, err := cfg.HelperCodes()
	require.ErrorIs(t, err, reconcile.ErrUnknownStatusCode)
}
