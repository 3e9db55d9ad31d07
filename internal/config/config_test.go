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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
server:
  host: "127.0.0.1"
  port: 8080
auth:
  jwt_secret: "0123456789abcdef0123456789abcdef"
`

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.GetServerAddress())
	assert.Equal(t, "memory", cfg.Store.Type)
	assert.Equal(t, "https://notify.eskiz.uz", cfg.Eskiz.BaseURL)
	assert.Equal(t, "4546", cfg.Eskiz.From)
	assert.Equal(t, "admin", cfg.Auth.AdminUser)
	assert.Equal(t, "0 0 9 * * *", cfg.Scheduler.SweepOverdueRentals)
	assert.Equal(t, 24, cfg.Scheduler.DebtCooldownHours)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_TYPE", "memory")
	t.Setenv("ESKIZ_EMAIL", "biz@example.uz")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "biz@example.uz", cfg.Eskiz.Email)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadValidation(t *testing.T) {
	t.Run("short jwt secret rejected", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
server:
  port: 8080
auth:
  jwt_secret: "short"
`))
		assert.Error(t, err)
	})

	t.Run("firestore requires project id", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
server:
  port: 8080
store:
  type: "firestore"
auth:
  jwt_secret: "0123456789abcdef0123456789abcdef"
`))
		assert.Error(t, err)
	})

	t.Run("unknown store type rejected", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
server:
  port: 8080
store:
  type: "mysql"
auth:
  jwt_secret: "0123456789abcdef0123456789abcdef"
`))
		assert.Error(t, err)
	})
}
