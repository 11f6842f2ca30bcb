package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "/api/v1", cfg.Server.BasePath)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, int32(10), cfg.DB.MaxConnections)
	assert.Equal(t, time.Hour, cfg.DB.MaxConnLifetime)
	assert.Equal(t, "uploads", cfg.Storage.UploadsPath)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration())
	assert.False(t, cfg.MQTT.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 2*time.Hour, cfg.Session.IdleTimeout)
}

func TestLoad_MissingJWTKey(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load("")
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_LIFETIME", "5m")
	t.Setenv("SMTP_FROM_EMAIL", "bot@example.com")
	t.Setenv("MQTT_ENABLED", "true")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Address())
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 5*time.Minute, cfg.DB.MaxConnLifetime)
	assert.Equal(t, "bot@example.com", cfg.SMTP.FromEmail)
	assert.True(t, cfg.MQTT.Enabled)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_ConfigFile(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("STORAGE_UPLOADS_PATH", "/var/lib/assistant")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  port: 7000
db:
  name: assistant_test
storage:
  uploads_path: ./files
mqtt:
  topic_prefix: home/assistant
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "assistant_test", cfg.DB.Name)
	assert.Equal(t, "home/assistant", cfg.MQTT.TopicPrefix)
	// ambiente vence o arquivo
	assert.Equal(t, "/var/lib/assistant", cfg.Storage.UploadsPath)
}

func TestLoad_ConfigFileMissing(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_ConnectionString(t *testing.T) {
	c := DatabaseConfig{Host: "h", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", c.ConnectionString())

	c.URL = "postgres://other"
	assert.Equal(t, "postgres://other", c.ConnectionString())
}

func TestLoad_DatabaseURL(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("DATABASE_URL", "postgres://a:b@c:5432/d")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://a:b@c:5432/d", cfg.DB.ConnectionString())
}
