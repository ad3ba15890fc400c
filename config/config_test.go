package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  serviceName: shopseva-test
  log:
    level: info
http:
  port: 9090
listing:
  pageSize: 12
redis:
  mirrorTTL: 1m
reference:
  categories:
    - { id: grocery, name: Grocery }
`

func TestLoadWithEnv_ReadsFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(testYAML), 0o600))

	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("REDIS_MIRRORTTL", "2m")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "shopseva-test", cfg.Env.ServiceName)
	assert.Equal(t, 7070, cfg.HTTP.Port)
	assert.Equal(t, 12, cfg.Listing.PageSize)
	require.NotNil(t, cfg.Redis)
	assert.Equal(t, 2*time.Minute, cfg.Redis.MirrorTTL)
	require.Len(t, cfg.Reference.Categories, 1)
	assert.Equal(t, "grocery", cfg.Reference.Categories[0].ID)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, DriverPostgres, cfg.Persistence.Driver)
	assert.Equal(t, 8, cfg.Listing.PageSize)
	assert.Equal(t, 2, cfg.Listing.MinImages)
	assert.Equal(t, 3, cfg.Listing.MaxImages)
	assert.Equal(t, 1024*1024, cfg.Listing.MaxImageBytes)
	assert.Equal(t, "Not approved by admin", cfg.Listing.DefaultRejectedReason)
	assert.Equal(t, 5*time.Second, cfg.Stats.RefreshInterval)
	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "en", cfg.I18n.DefaultLanguage)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{Listing: &ListingConfig{PageSize: 20, DefaultRejectedReason: "Rejected"}}
	cfg.ApplyDefaults()

	assert.Equal(t, 20, cfg.Listing.PageSize)
	assert.Equal(t, "Rejected", cfg.Listing.DefaultRejectedReason)
}
