package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fasim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingRequired(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), true)
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
delimiter: ","
trim_space: true
log_level: debug
server:
  addr: ":9090"
redis:
  addr: "redis:6379"
  db: "2"
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, ",", cfg.Delimiter)
	assert.True(t, cfg.TrimSpace)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB, "weakly typed input")
	assert.Equal(t, "fasim:description:", cfg.Redis.Prefix, "unset keys keep defaults")
}

func TestLoad_UnknownKey(t *testing.T) {
	path := writeFile(t, "delimeter: ','\n")
	_, err := Load(path, true)
	assert.Error(t, err)
}

func TestLoad_InvalidDelimiter(t *testing.T) {
	path := writeFile(t, "delimiter: '::'\n")
	_, err := Load(path, true)
	assert.ErrorContains(t, err, "single character")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"FASIM_DELIMITER":  "|",
		"FASIM_TRIM_SPACE": "true",
		"FASIM_MCP_PORT":   "9000",
		"FASIM_REDIS_DB":   "3",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, applyEnv(&cfg, lookup))
	assert.Equal(t, "|", cfg.Delimiter)
	assert.True(t, cfg.TrimSpace)
	assert.Equal(t, 9000, cfg.MCP.Port)
	assert.Equal(t, 3, cfg.Redis.DB)

	env["FASIM_REDIS_DB"] = "three"
	assert.Error(t, applyEnv(&cfg, lookup))
}
