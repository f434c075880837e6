package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Validator is implemented by every loadable configuration.
type Validator interface {
	Validate() error
}

const defaultEnvFile = ".env"

// Load reads a configuration in ascending priority: the given defaults, a
// yaml config file, a .env file, and finally <PREFIX>_* environment
// variables. The result is validated before it is returned.
//
// Convention: a binary named "storefront" reads config.yaml and the
// STOREFRONT_ env prefix.
func Load[T Validator](name string, defaults map[string]any) (T, error) {
	var cfg T
	k := koanf.New(".")

	configFile := "config.yaml"
	if name != "storefront" {
		configFile = name + ".yaml"
	}
	envPrefix := strings.ToUpper(name) + "_"

	// 1. Built-in defaults
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return cfg, fmt.Errorf("error loading defaults: %w", err)
	}

	// 2. Load configuration from yaml file
	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN: error loading YAML config file '%s': %v", configFile, err)
		}
	}

	// 3. Load environment variables from .env file
	envTransformer := func(key string) string {
		key = strings.ToLower(key)
		key = strings.TrimPrefix(key, strings.ToLower(envPrefix))
		return strings.ReplaceAll(key, "_", ".")
	}
	if envFileMap, err := godotenv.Read(defaultEnvFile); err == nil {
		envMap := make(map[string]any)
		for key, value := range envFileMap {
			envMap[envTransformer(key)] = value
		}
		if err := k.Load(confmap.Provider(envMap, "."), nil); err != nil {
			log.Printf("WARN: error loading .env config: %v", err)
		}
	} else if !os.IsNotExist(err) {
		log.Printf("WARN: error reading .env file: %v", err)
	}

	// 4. Load environment variables from the system, the highest priority
	if err := k.Load(env.Provider(envPrefix, ".", envTransformer), nil); err != nil {
		log.Printf("WARN: error loading system env vars: %v", err)
	}

	// 5. Unmarshal the configuration into the target struct
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// 6. Validate the configuration
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Defaults are the storefront client's built-in values. The credential
// store lands under the user's home directory when one exists.
func Defaults() map[string]any {
	storePath := ".storefront"
	if home, err := os.UserHomeDir(); err == nil {
		storePath = filepath.Join(home, ".storefront")
	}
	return map[string]any{
		"api.baseurl":           "https://dummyjson.com",
		"api.timeout":           "15s",
		"catalog.pagesize":      20,
		"session.expiresinmins": 30,
		"store.path":            storePath,
		"log.level":             "info",
	}
}
