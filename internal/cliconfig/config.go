// Package cliconfig loads the simplec CLI's configuration from simplec.yml
// or the environment. The compile pipeline itself takes no configuration —
// these settings only shape how the CLI presents results.
package cliconfig

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the simplec CLI configuration
type Config struct {
	Output OutputConfig `mapstructure:"output"`
}

// OutputConfig controls how compile results are printed
type OutputConfig struct {
	Format         string `mapstructure:"format"`
	NoColor        bool   `mapstructure:"no_color"`
	MaxDiagnostics int    `mapstructure:"max_diagnostics"`
}

// ValidFormats lists the accepted output.format values.
var ValidFormats = []string{"text", "json", "tree", "tokens"}

// Load loads the configuration from simplec.yml or simplec.yaml
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("output.format", "text")
	v.SetDefault("output.no_color", false)
	v.SetDefault("output.max_diagnostics", 50)

	// Set config name and paths
	v.SetConfigName("simplec")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Enable environment variable support (SIMPLEC_OUTPUT_FORMAT etc.)
	v.SetEnvPrefix("simplec")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	valid := false
	for _, f := range ValidFormats {
		if cfg.Output.Format == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("output.format must be one of %s, got: %s",
			strings.Join(ValidFormats, ", "), cfg.Output.Format)
	}

	if cfg.Output.MaxDiagnostics < 0 {
		return fmt.Errorf("output.max_diagnostics must be >= 0, got: %d", cfg.Output.MaxDiagnostics)
	}

	return nil
}
