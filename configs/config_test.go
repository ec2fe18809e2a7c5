package configs

import (
	"testing"

	"github.com/RyanBlaney/latency-benchmark-common/logging"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSetDefaultsMatchesGetDefaultConfig checks viper defaults decode to the
// same values GetDefaultConfig builds by hand.
func TestSetDefaultsMatchesGetDefaultConfig(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	config, err := LoadConfigFrom(v)
	require.NoError(t, err)

	assert.Equal(t, GetDefaultConfig(), config)
	assert.NoError(t, ValidateConfig(config))
}

func TestSetDefaultsKeepsExistingValues(t *testing.T) {
	v := viper.New()
	v.Set("signal.kind", "Triangle")
	v.Set("grid.samples", 64)
	SetDefaults(v)

	config, err := LoadConfigFrom(v)
	require.NoError(t, err)

	assert.Equal(t, "Triangle", config.Signal.Kind)
	assert.Equal(t, 64, config.Grid.Samples)
	assert.Equal(t, "None", config.Signal.Operation)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero samples", func(c *Config) { c.Grid.Samples = 0 }, true},
		{"reversed grid", func(c *Config) { c.Grid.Start, c.Grid.Stop = 1, 0 }, true},
		{"flat plot", func(c *Config) { c.Plot.Height = 0 }, true},
		{"negative precision", func(c *Config) { c.Output.Precision = -1 }, true},
		{"unknown format", func(c *Config) { c.OutputFormat = "xml" }, true},
		{"csv format", func(c *Config) { c.OutputFormat = "csv" }, false},
		{"debug log level", func(c *Config) { c.LogLevel = "DEBUG" }, false},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"invalid frequency text is not a config error", func(c *Config) { c.Signal.Frequency = "abc" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := GetDefaultConfig()
			tt.mutate(config)

			err := ValidateConfig(config)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    logging.Level
		wantErr bool
	}{
		{"debug", logging.DebugLevel, false},
		{"info", logging.InfoLevel, false},
		{"", logging.InfoLevel, false},
		{" Warn ", logging.WarnLevel, false},
		{"warning", logging.WarnLevel, false},
		{"error", logging.ErrorLevel, false},
		{"trace", logging.InfoLevel, true},
	}

	for _, tt := range tests {
		got, err := ParseLogLevel(tt.name)
		if tt.wantErr {
			assert.Error(t, err, tt.name)
			continue
		}
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}
