package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "server:\n  host: 127.0.0.1\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
	assert.Equal(t, int64(16<<20), cfg.Upload.MaxSize)
	assert.Equal(t, "http://localhost:8080", cfg.ERPNext.BaseURL)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoad_FileOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
upload:
  dir: /tmp/uploads
erpnext:
  base_url: http://erp.internal:8080
logger:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "/tmp/uploads", cfg.Upload.Dir)
	assert.Equal(t, "http://erp.internal:8080", cfg.ERPNext.BaseURL)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Port: 8000},
			Upload:  UploadConfig{Dir: "uploads", MaxSize: 1},
			ERPNext: ERPNextConfig{BaseURL: "http://localhost:8080"},
		}
	}

	assert.NoError(t, valid().Validate())

	c := valid()
	c.Server.Port = 0
	assert.Error(t, c.Validate())

	c = valid()
	c.Upload.Dir = ""
	assert.Error(t, c.Validate())

	c = valid()
	c.Upload.MaxSize = 0
	assert.Error(t, c.Validate())

	c = valid()
	c.ERPNext.BaseURL = ""
	assert.Error(t, c.Validate())
}
