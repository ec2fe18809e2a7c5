package configs

import (
	"fmt"
	"strings"

	"github.com/RyanBlaney/latency-benchmark-common/logging"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	// Application settings
	Verbose      bool   `mapstructure:"verbose" yaml:"verbose"`
	LogLevel     string `mapstructure:"log_level" yaml:"log_level"`
	OutputFormat string `mapstructure:"output_format" yaml:"output_format"`

	// Signal parameters for a render
	Signal SignalConfig `mapstructure:"signal" yaml:"signal"`

	// Time grid the signal is sampled on
	Grid GridConfig `mapstructure:"grid" yaml:"grid"`

	// Plot image settings
	Plot PlotConfig `mapstructure:"plot" yaml:"plot"`

	// Sample data output settings
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Metric emission
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`
}

// SignalConfig holds the four user parameters. Frequency and amplitude stay
// as text until the render validates them.
type SignalConfig struct {
	Kind      string `mapstructure:"kind" yaml:"kind"`
	Operation string `mapstructure:"operation" yaml:"operation"`
	Frequency string `mapstructure:"frequency" yaml:"frequency"`
	Amplitude string `mapstructure:"amplitude" yaml:"amplitude"`
}

// GridConfig describes an evenly spaced time grid
type GridConfig struct {
	Samples int     `mapstructure:"samples" yaml:"samples"`
	Start   float64 `mapstructure:"start" yaml:"start"`
	Stop    float64 `mapstructure:"stop" yaml:"stop"`
}

// PlotConfig contains image rendering settings, dimensions in inches
type PlotConfig struct {
	OutputFile     string  `mapstructure:"output_file" yaml:"output_file"`
	Width          float64 `mapstructure:"width" yaml:"width"`
	Height         float64 `mapstructure:"height" yaml:"height"`
	XLabel         string  `mapstructure:"x_label" yaml:"x_label"`
	YLabel         string  `mapstructure:"y_label" yaml:"y_label"`
	OriginalLabel  string  `mapstructure:"original_label" yaml:"original_label"`
	ProcessedLabel string  `mapstructure:"processed_label" yaml:"processed_label"`
}

// OutputConfig contains sample data output settings
type OutputConfig struct {
	File      string `mapstructure:"file" yaml:"file"`
	Precision int    `mapstructure:"precision" yaml:"precision"`
	PrintData bool   `mapstructure:"print_data" yaml:"print_data"`
}

// MetricsConfig enables render metrics when LogPath is set
type MetricsConfig struct {
	LogPath string `mapstructure:"log_path" yaml:"log_path"`
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(viper.GetViper())
}

// LoadConfigFrom decodes configuration from a specific viper instance
func LoadConfigFrom(v *viper.Viper) (*Config, error) {
	config := &Config{}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return config, nil
}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) error {
	if config.Grid.Samples <= 0 {
		return fmt.Errorf("grid samples must be positive")
	}

	if config.Grid.Stop <= config.Grid.Start {
		return fmt.Errorf("grid stop must be greater than grid start")
	}

	if config.Plot.Width <= 0 || config.Plot.Height <= 0 {
		return fmt.Errorf("plot width and height must be positive")
	}

	if config.Output.Precision < 0 {
		return fmt.Errorf("output precision cannot be negative")
	}

	if _, err := ParseLogLevel(config.LogLevel); err != nil {
		return err
	}

	switch config.OutputFormat {
	case "json", "yaml", "csv", "table":
	default:
		return fmt.Errorf("unsupported output format: %s", config.OutputFormat)
	}

	return nil
}

// ParseLogLevel maps a log_level name to its logging level
func ParseLogLevel(name string) (logging.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return logging.DebugLevel, nil
	case "info", "":
		return logging.InfoLevel, nil
	case "warn", "warning":
		return logging.WarnLevel, nil
	case "error":
		return logging.ErrorLevel, nil
	default:
		return logging.InfoLevel, fmt.Errorf("unsupported log level: %s", name)
	}
}
