package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverridesDefaults(t *testing.T) {
	content := `
addr: ":8080"
env: "production"
uploads:
  dir: "/var/lib/roomkit/uploads"
sweep:
  interval: 30s
rate_limiter:
  enabled: false
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "/var/lib/roomkit/uploads", cfg.Uploads.Dir)
	assert.Equal(t, 30*time.Second, cfg.Sweep.Interval)
	assert.False(t, cfg.RateLimiter.Enabled)

	// Untouched keys keep their defaults.
	assert.Equal(t, 100, cfg.RateLimiter.RequestsPerTimeFrame)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, 10*time.Second, cfg.Sweep.Interval)
	assert.True(t, cfg.RateLimiter.Enabled)
}
