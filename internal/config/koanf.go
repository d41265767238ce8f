package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ROOMLAYOUT_"

// PathEnvVar names the environment variable that points at a config file.
const PathEnvVar = EnvPrefix + "CONFIG"

// DefaultPaths are searched in order when no path is given.
var DefaultPaths = []string{
	"roomlayout.yaml",
	"roomlayout.yml",
	"/etc/roomlayout/config.yaml",
}

// nestedSections lists env key prefixes that map onto nested sections.
// Everything else splits at the first underscore.
var nestedSections = map[string]string{
	"predictor_linear_": "predictor.linear.",
}

// sliceKeys are split on commas when they arrive as strings from env.
var sliceKeys = []string{"server.cors_origins"}

// Load builds the configuration from defaults, the config file and the
// environment, then validates it. path may be empty; then PathEnvVar and
// DefaultPaths are tried, and a missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = findConfigFile()
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil && !explicit {
			path = ""
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	if err := splitSlices(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		return p
	}
	for _, p := range DefaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// envKey maps ROOMLAYOUT_LAYOUT_RETRY_BUDGET to layout.retry_budget.
// The config path variable itself is not a setting and is dropped.
func envKey(key string) string {
	if key == PathEnvVar {
		return ""
	}
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	for prefix, section := range nestedSections {
		if strings.HasPrefix(key, prefix) {
			return section + strings.TrimPrefix(key, prefix)
		}
	}
	return strings.Replace(key, "_", ".", 1)
}

func splitSlices(k *koanf.Koanf) error {
	for _, key := range sliceKeys {
		s, ok := k.Get(key).(string)
		if !ok {
			continue
		}
		var parts []string
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if err := k.Set(key, parts); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}
	return nil
}
