package configs

import (
	"github.com/spf13/viper"

	"github.com/RyanBlaney/signal-plotter/pkg/signal"
	"github.com/RyanBlaney/signal-plotter/pkg/transform"
)

// SetDefaults sets default configuration values for all components
func SetDefaults(v *viper.Viper) {
	// Signal defaults
	if !v.IsSet("signal.kind") {
		v.SetDefault("signal.kind", string(signal.KindSine))
	}
	if !v.IsSet("signal.operation") {
		v.SetDefault("signal.operation", string(transform.OpNone))
	}
	if !v.IsSet("signal.frequency") {
		v.SetDefault("signal.frequency", "1.0")
	}
	if !v.IsSet("signal.amplitude") {
		v.SetDefault("signal.amplitude", "1.0")
	}

	// Grid defaults
	if !v.IsSet("grid.samples") {
		v.SetDefault("grid.samples", signal.DefaultSamples)
	}
	if !v.IsSet("grid.start") {
		v.SetDefault("grid.start", signal.DefaultStart)
	}
	if !v.IsSet("grid.stop") {
		v.SetDefault("grid.stop", signal.DefaultStop)
	}

	// Plot defaults
	if !v.IsSet("plot.output_file") {
		v.SetDefault("plot.output_file", "signal.png")
	}
	if !v.IsSet("plot.width") {
		v.SetDefault("plot.width", 8.0)
	}
	if !v.IsSet("plot.height") {
		v.SetDefault("plot.height", 4.0)
	}
	if !v.IsSet("plot.x_label") {
		v.SetDefault("plot.x_label", "Time (s)")
	}
	if !v.IsSet("plot.y_label") {
		v.SetDefault("plot.y_label", "Amplitude")
	}
	if !v.IsSet("plot.original_label") {
		v.SetDefault("plot.original_label", "Original Signal")
	}
	if !v.IsSet("plot.processed_label") {
		v.SetDefault("plot.processed_label", "Processed Signal")
	}

	// Output defaults
	if !v.IsSet("output.file") {
		v.SetDefault("output.file", "")
	}
	if !v.IsSet("output.precision") {
		v.SetDefault("output.precision", 6)
	}
	if !v.IsSet("output.print_data") {
		v.SetDefault("output.print_data", false)
	}

	// Metrics defaults
	if !v.IsSet("metrics.log_path") {
		v.SetDefault("metrics.log_path", "")
	}

	// Application defaults
	if !v.IsSet("verbose") {
		v.SetDefault("verbose", false)
	}
	if !v.IsSet("log_level") {
		v.SetDefault("log_level", "info")
	}
	if !v.IsSet("output_format") {
		v.SetDefault("output_format", "table")
	}
}

// GetDefaultConfig returns a Config struct with all default values set
func GetDefaultConfig() *Config {
	return &Config{
		Verbose:      false,
		LogLevel:     "info",
		OutputFormat: "table",
		Signal:       GetDefaultSignalConfig(),
		Grid:         GetDefaultGridConfig(),
		Plot:         GetDefaultPlotConfig(),
		Output:       GetDefaultOutputConfig(),
	}
}

// GetDefaultSignalConfig returns a unit sine with no transform
func GetDefaultSignalConfig() SignalConfig {
	return SignalConfig{
		Kind:      string(signal.KindSine),
		Operation: string(transform.OpNone),
		Frequency: "1.0",
		Amplitude: "1.0",
	}
}

// GetDefaultGridConfig returns the default time grid settings
func GetDefaultGridConfig() GridConfig {
	return GridConfig{
		Samples: signal.DefaultSamples,
		Start:   signal.DefaultStart,
		Stop:    signal.DefaultStop,
	}
}

// GetDefaultPlotConfig returns default image settings
func GetDefaultPlotConfig() PlotConfig {
	return PlotConfig{
		OutputFile:     "signal.png",
		Width:          8,
		Height:         4,
		XLabel:         "Time (s)",
		YLabel:         "Amplitude",
		OriginalLabel:  "Original Signal",
		ProcessedLabel: "Processed Signal",
	}
}

// GetDefaultOutputConfig returns default sample data output settings
func GetDefaultOutputConfig() OutputConfig {
	return OutputConfig{
		Precision: 6,
	}
}
