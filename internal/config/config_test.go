package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 2, cfg.Suggest.MinQueryLength)
	assert.Equal(t, 2, cfg.Suggest.MaxCategories)
	assert.Equal(t, 3, cfg.Suggest.MaxListings)
	assert.Equal(t, 200*time.Millisecond, cfg.Suggest.DismissDelayDuration())
	assert.Empty(t, cfg.Catalog.FixturePath)
	assert.False(t, cfg.Catalog.Watch)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SUGGEST_MAX_LISTINGS", "5")
	t.Setenv("SUGGEST_DISMISS_DELAY_MS", "not-a-number")
	t.Setenv("CATALOG_FIXTURE_PATH", "/tmp/catalog.json")
	t.Setenv("CATALOG_WATCH", "TRUE")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Suggest.MaxListings)
	assert.Equal(t, 200, cfg.Suggest.DismissDelay, "unparseable values fall back")
	assert.True(t, cfg.Catalog.Watch)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"watch without fixture", map[string]string{"CATALOG_WATCH": "true"}},
		{"zero min query length", map[string]string{"SUGGEST_MIN_QUERY_LENGTH": "0"}},
		{"negative dismiss delay", map[string]string{"SUGGEST_DISMISS_DELAY_MS": "-1"}},
		{"zero burst", map[string]string{"RATE_LIMIT_BURST": "0"}},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}},
		{"wildcard cors in production", map[string]string{"ENVIRONMENT": "production", "CORS_ALLOWED_ORIGINS": "*"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
