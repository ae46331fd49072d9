package config

import (
	"fmt"
	"os"

	"github.com/fga-eps-mds/2023-1-CAPJu-Front/commonGo"
	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/common"
	"github.com/pelletier/go-toml/v2"
)

const (
	envComponentTreeURL = "SONAR_METRICS_COMPONENT_TREE_URL"
	envOutputDirectory  = "SONAR_METRICS_OUTPUT_DIRECTORY"
	defaultHistoryDB    = "snapshots.db"
)

// SonarConfig defines how SonarCloud is queried
type SonarConfig struct {
	ComponentTreeURL        string `toml:"ComponentTreeURL"`
	RequestTimeoutInSeconds uint32 `toml:"RequestTimeoutInSeconds"`
}

// OutputConfig defines where snapshots are written
type OutputConfig struct {
	Directory string `toml:"Directory"`
}

// HistoryConfig defines the optional snapshot ledger
type HistoryConfig struct {
	Enabled      bool   `toml:"Enabled"`
	DatabasePath string `toml:"DatabasePath"`
}

// Config maps to the optional config.toml file of the metrics fetcher
type Config struct {
	Sonar   SonarConfig   `toml:"Sonar"`
	Output  OutputConfig  `toml:"Output"`
	History HistoryConfig `toml:"History"`
}

// DefaultConfig returns the configuration used when no file is provided
func DefaultConfig() Config {
	return Config{
		Sonar: SonarConfig{
			ComponentTreeURL:        common.ComponentTreeURL,
			RequestTimeoutInSeconds: 0,
		},
		Output: OutputConfig{
			Directory: "",
		},
		History: HistoryConfig{
			Enabled:      false,
			DatabasePath: defaultHistoryDB,
		},
	}
}

// LoadConfig parses a TOML file on top of the default configuration. An empty path returns the defaults.
func LoadConfig(filepath string) (*Config, error) {
	cfg := DefaultConfig()
	if len(filepath) == 0 {
		return &cfg, nil
	}

	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", filepath, err)
	}

	err = toml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	return &cfg, nil
}

// ApplyEnvOverrides replaces the config values for which an environment override is set
func ApplyEnvOverrides(cfg *Config) {
	overrides := map[string]string{
		envComponentTreeURL: cfg.Sonar.ComponentTreeURL,
		envOutputDirectory:  cfg.Output.Directory,
	}
	commonGo.ReadEnvValues(overrides)

	cfg.Sonar.ComponentTreeURL = overrides[envComponentTreeURL]
	cfg.Output.Directory = overrides[envOutputDirectory]
}
