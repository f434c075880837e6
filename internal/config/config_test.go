package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		API:     APIConfig{BaseURL: "https://dummyjson.com", Timeout: 15 * time.Second},
		Catalog: CatalogConfig{PageSize: 20},
		Session: SessionConfig{ExpiresInMins: 30},
		Store:   StoreConfig{Path: "/tmp/storefront"},
		Log:     LogConfig{Level: "info"},
	}
}

func Test_Config_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid config passes", mutate: func(c *Config) {}},
		{
			name:    "empty base URL",
			mutate:  func(c *Config) { c.API.BaseURL = "" },
			wantErr: "api base URL cannot be empty",
		},
		{
			name:    "base URL without scheme",
			mutate:  func(c *Config) { c.API.BaseURL = "dummyjson.com" },
			wantErr: "api base URL must be http(s)",
		},
		{
			name:    "non-positive timeout",
			mutate:  func(c *Config) { c.API.Timeout = 0 },
			wantErr: "invalid api timeout",
		},
		{
			name:    "non-positive page size",
			mutate:  func(c *Config) { c.Catalog.PageSize = 0 },
			wantErr: "invalid catalog page size",
		},
		{
			name:    "non-positive session expiry",
			mutate:  func(c *Config) { c.Session.ExpiresInMins = -1 },
			wantErr: "invalid session expiry",
		},
		{
			name:    "empty store path",
			mutate:  func(c *Config) { c.Store.Path = "" },
			wantErr: "credential store path cannot be empty",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			cfg := validConfig()
			tc.mutate(cfg)
			// when
			err := cfg.Validate()
			// then
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func Test_Load_Defaults(t *testing.T) {
	// given: no config file, no env overrides
	t.Chdir(t.TempDir())
	// when
	cfg, err := Load[*Config]("storefront", Defaults())
	// then
	require.NoError(t, err)
	assert.Equal(t, "https://dummyjson.com", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, 20, cfg.Catalog.PageSize)
	assert.Equal(t, 30, cfg.Session.ExpiresInMins)
	assert.False(t, cfg.Session.ValidateOnStart)
	assert.NotEmpty(t, cfg.Store.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func Test_Load_EnvOverrides(t *testing.T) {
	// given
	t.Chdir(t.TempDir())
	t.Setenv("STOREFRONT_API_BASEURL", "http://localhost:8080")
	t.Setenv("STOREFRONT_CATALOG_PAGESIZE", "10")
	t.Setenv("STOREFRONT_SESSION_VALIDATEONSTART", "true")
	// when
	cfg, err := Load[*Config]("storefront", Defaults())
	// then
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 10, cfg.Catalog.PageSize)
	assert.True(t, cfg.Session.ValidateOnStart)
}

func Test_Load_RejectsInvalidOverride(t *testing.T) {
	// given
	t.Chdir(t.TempDir())
	t.Setenv("STOREFRONT_API_BASEURL", "not a url")
	// when
	_, err := Load[*Config]("storefront", Defaults())
	// then
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}
