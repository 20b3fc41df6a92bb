package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))
	return dir
}

func TestLoadConfig_File(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "roadmaps")
	dir := writeConfig(t, `
server:
  port: "9090"
  mode: debug
storage:
  type: local
  key: my-roadmaps
  local_path: `+dataDir+`
jwt:
  secret: file-secret
  expire_hours: 24
cors:
  allowed_origins:
    - http://localhost:5173
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, StorageLocal, cfg.Storage.Type)
	assert.Equal(t, "my-roadmaps", cfg.Storage.Key)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.ConfigFile)

	info, err := os.Stat(dataDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("STORAGE_TYPE", StorageMemory)

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, StorageMemory, cfg.Storage.Type)
	assert.Equal(t, "roadmaps", cfg.Storage.Key)
	assert.Equal(t, 72*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, 6000, cfg.RateLimit.MaxRequests)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := writeConfig(t, `
storage:
  type: local
jwt:
  secret: file-secret
`)
	t.Setenv("STORAGE_TYPE", StorageMemory)
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.Storage.Type)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unsupported storage", "storage:\n  type: floppy\n"},
		{"short secret in release", "server:\n  mode: release\nstorage:\n  type: memory\njwt:\n  secret: short\n"},
		{"zero rate limit", "storage:\n  type: memory\nrate_limit:\n  max_requests: 0\n"},
		{"malformed yaml", "server: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Server:    ServerConfig{Mode: "release"},
		Storage:   StorageConfig{Type: StorageRedis, Key: "roadmaps"},
		JWT:       JWTConfig{Secret: "0123456789abcdef0123456789abcdef"},
		RateLimit: RateLimitConfig{MaxRequests: 10, WindowMinutes: 1},
	}
	assert.NoError(t, cfg.Validate())

	cfg.Storage.Key = ""
	assert.Error(t, cfg.Validate())
}
