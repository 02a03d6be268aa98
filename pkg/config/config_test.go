package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
server:
  http:
    port: 8080
    timeout: 15s
email:
  recipients:
    - ops@example.com
    - lead@example.com
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o600))
	return dir
}

func TestLoad_FromPath(t *testing.T) {
	dir := writeConfig(t, "workitem", sampleConfig)

	cfg, err := Load("workitem", WithPath(dir))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.GetInt("server.http.port"))
	assert.Equal(t, 15*time.Second, cfg.GetDuration("server.http.timeout"))
	assert.Equal(t, []string{"ops@example.com", "lead@example.com"}, cfg.GetStringSlice("email.recipients"))
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := writeConfig(t, "workitem", sampleConfig)
	t.Setenv("WORKITEM_SERVER_HTTP_PORT", "9090")

	cfg, err := Load("workitem", WithPath(dir))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.GetInt("server.http.port"))
}

func TestLoad_ConfigPathEnvAndDefaults(t *testing.T) {
	dir := writeConfig(t, "workitem", sampleConfig)
	t.Setenv("CONFIG_PATH", dir)

	cfg, err := Load("workitem", WithDefaults(map[string]interface{}{
		"database.driver":  "sqlite",
		"server.http.port": 1,
	}))
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.GetString("database.driver"))
	assert.Equal(t, 8080, cfg.GetInt("server.http.port"))
	assert.True(t, cfg.IsSet("email.recipients"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("does-not-exist", WithPath(t.TempDir()))
	assert.Error(t, err)
}
