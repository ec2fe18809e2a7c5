package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/RyanBlaney/signal-plotter/configs"
)

var configTestYAML bool

// configTestCmd represents the config test command
var configTestCmd = &cobra.Command{
	Use:   "config-test",
	Short: "Test and display all configuration values",
	Long: `Test configuration loading and display all values to verify proper parsing.

This command loads the configuration and displays all values in a structured format
to help verify that your YAML configuration is being parsed correctly.

Examples:
  # Test with default config file
  signal-plotter config-test

  # Test with specific config file and print it back as YAML
  signal-plotter --config /path/to/config.yaml config-test --yaml`,
	RunE: runConfigTest,
}

func init() {
	rootCmd.AddCommand(configTestCmd)

	configTestCmd.Flags().BoolVar(&configTestYAML, "yaml", false,
		"print the resolved configuration as YAML")
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	config, err := configs.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	w := cmd.OutOrStdout()

	if configTestYAML {
		return writeConfigYAML(w, config)
	}

	fmt.Fprintln(w, "SIGNAL PLOTTER CONFIGURATION TEST")
	fmt.Fprintln(w, strings.Repeat("=", 80))
	writeConfigSections(w, config)

	if err := configs.ValidateConfig(config); err != nil {
		return fmt.Errorf("configuration is invalid: %w", err)
	}

	fmt.Fprintln(w)
	printSuccess("Configuration is valid")
	return nil
}

// writeConfigYAML encodes the resolved configuration
func writeConfigYAML(w io.Writer, config *configs.Config) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	return encoder.Close()
}

func writeConfigSections(w io.Writer, config *configs.Config) {
	printSection(w, "APPLICATION SETTINGS")
	printKeyValue(w, "Verbose", fmt.Sprintf("%t", config.Verbose))
	printKeyValue(w, "Log Level", config.LogLevel)
	printKeyValue(w, "Output Format", config.OutputFormat)

	printSection(w, "SIGNAL")
	printKeyValue(w, "Kind", config.Signal.Kind)
	printKeyValue(w, "Operation", config.Signal.Operation)
	printKeyValue(w, "Frequency", config.Signal.Frequency)
	printKeyValue(w, "Amplitude", config.Signal.Amplitude)

	printSection(w, "TIME GRID")
	printKeyValue(w, "Samples", fmt.Sprintf("%d", config.Grid.Samples))
	printKeyValue(w, "Start", fmt.Sprintf("%g s", config.Grid.Start))
	printKeyValue(w, "Stop", fmt.Sprintf("%g s", config.Grid.Stop))

	printSection(w, "PLOT")
	printKeyValue(w, "Output File", config.Plot.OutputFile)
	printKeyValue(w, "Size", fmt.Sprintf("%gx%g in", config.Plot.Width, config.Plot.Height))
	printKeyValue(w, "X Label", config.Plot.XLabel)
	printKeyValue(w, "Y Label", config.Plot.YLabel)
	printKeyValue(w, "Original Label", config.Plot.OriginalLabel)
	printKeyValue(w, "Processed Label", config.Plot.ProcessedLabel)

	printSection(w, "OUTPUT")
	printKeyValue(w, "Data File", config.Output.File)
	printKeyValue(w, "Precision", fmt.Sprintf("%d", config.Output.Precision))
	printKeyValue(w, "Print Data", fmt.Sprintf("%t", config.Output.PrintData))

	printSection(w, "METRICS")
	printKeyValue(w, "Log Path", config.Metrics.LogPath)
}
