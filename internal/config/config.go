package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration options for the application
type Config struct {
	// Gating configuration
	Debug   bool `mapstructure:"debug"`   // Emit debug-category messages
	Verbose bool `mapstructure:"verbose"` // Emit verbose-category messages

	// Output configuration
	NoColor bool   `mapstructure:"no_color"` // Disable ANSI styling
	OutFile string `mapstructure:"out_file"` // Default file sink for plain-text copies

	// Tracing configuration
	Trace     bool   `mapstructure:"trace"`      // Record a session trace file
	TraceFile string `mapstructure:"trace_file"` // Path to the trace file
}

// DefaultConfigDir is the directory under $HOME holding config.yaml.
const DefaultConfigDir = ".writemsg"

// Load loads configuration from the config file and environment
// variables. Flag overrides are applied by the cmd layer afterwards.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config path
	configDir := getConfigDir()
	v.AddConfigPath(configDir)

	// Set environment variable prefix: WRITEMSG_DEBUG, WRITEMSG_NO_COLOR, ...
	v.SetEnvPrefix("WRITEMSG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Register every key so env-only values survive Unmarshal.
	v.SetDefault("debug", false)
	v.SetDefault("verbose", false)
	v.SetDefault("no_color", false)
	v.SetDefault("out_file", "")
	v.SetDefault("trace", false)
	v.SetDefault("trace_file", "")

	// Attempt to read the config file
	if err := v.ReadInConfig(); err != nil {
		// Config file not found is not an error
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return config, nil
}

// getConfigDir returns the path to the config directory
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(homeDir, DefaultConfigDir)
}
