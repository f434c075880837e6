// Package config defines the storefront configuration and its loader.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the full storefront configuration.
type Config struct {
	API     APIConfig     `koanf:"api"`
	Catalog CatalogConfig `koanf:"catalog"`
	Session SessionConfig `koanf:"session"`
	Store   StoreConfig   `koanf:"store"`
	Log     LogConfig     `koanf:"log"`
}

// APIConfig points the gateway at the remote catalog service.
type APIConfig struct {
	BaseURL string        `koanf:"baseurl"`
	Timeout time.Duration `koanf:"timeout"`
}

func (c *APIConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("api base URL cannot be empty")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("api base URL must be http(s): %s", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid api timeout: %v", c.Timeout)
	}
	return nil
}

// CatalogConfig tunes the catalog view.
type CatalogConfig struct {
	PageSize int `koanf:"pagesize"`
}

func (c *CatalogConfig) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("invalid catalog page size: %d", c.PageSize)
	}
	return nil
}

// SessionConfig tunes login behavior.
type SessionConfig struct {
	ExpiresInMins   int  `koanf:"expiresinmins"`
	ValidateOnStart bool `koanf:"validateonstart"`
}

func (c *SessionConfig) Validate() error {
	if c.ExpiresInMins <= 0 {
		return fmt.Errorf("invalid session expiry: %d minutes", c.ExpiresInMins)
	}
	return nil
}

// StoreConfig locates the on-disk credential store.
type StoreConfig struct {
	Path string `koanf:"path"`
}

func (c *StoreConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("credential store path cannot be empty")
	}
	return nil
}

// LogConfig controls logging. File may be empty, in which case logs go to
// stderr; the TUI always wants a file since it owns the terminal.
type LogConfig struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"`
}

func (c *LogConfig) Validate() error {
	return nil
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("\n--- API ---\n")
	b.WriteString(fmt.Sprintf("  api.baseurl: %s\n", c.API.BaseURL))
	b.WriteString(fmt.Sprintf("  api.timeout: %v\n", c.API.Timeout))
	b.WriteString("\n--- Catalog ---\n")
	b.WriteString(fmt.Sprintf("  catalog.pagesize: %d\n", c.Catalog.PageSize))
	b.WriteString("\n--- Session ---\n")
	b.WriteString(fmt.Sprintf("  session.expiresinmins: %d\n", c.Session.ExpiresInMins))
	b.WriteString(fmt.Sprintf("  session.validateonstart: %t\n", c.Session.ValidateOnStart))
	b.WriteString("\n--- Store ---\n")
	b.WriteString(fmt.Sprintf("  store.path: %s\n", c.Store.Path))
	b.WriteString("\n--- Log ---\n")
	b.WriteString(fmt.Sprintf("  log.level: %s\n", c.Log.Level))
	b.WriteString(fmt.Sprintf("  log.file: %s\n", c.Log.File))
	return b.String()
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	if err := c.API.Validate(); err != nil {
		return err
	}
	if err := c.Catalog.Validate(); err != nil {
		return err
	}
	if err := c.Session.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}
