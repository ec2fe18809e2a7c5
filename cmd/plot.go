package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/signal-plotter/configs"
	"github.com/RyanBlaney/signal-plotter/internal/app"
)

var plotNoImage bool

// plotCmd represents the plot command
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Generate a waveform, transform it and plot both",
	Long: `Generate a waveform over an evenly spaced time grid, apply one operation
and draw the original and processed signals on one plot.

Signals:    Sine, Square, Sawtooth, Triangle
Operations: None, "Scale x2", "Add 1", "Subtract 1", Differentiate, Integrate

Unknown signals plot as a flat zero line and unknown operations leave the
signal unchanged. Frequency and amplitude must be numbers; otherwise nothing
is rendered and any existing plot file is left as it was.

Examples:
  # Unit sine wave written to signal.png
  signal-plotter plot

  # 3 Hz square wave, amplitude 2, integrated, as SVG
  signal-plotter plot --signal Square --operation Integrate -f 3 -a 2 --out square.svg

  # Print differentiated triangle samples as CSV without drawing
  signal-plotter plot --signal Triangle --operation Differentiate --no-image --print-data -o csv`,
	RunE: runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)

	flags := plotCmd.Flags()
	flags.StringP("signal", "s", "Sine", "signal kind (Sine, Square, Sawtooth, Triangle)")
	flags.StringP("operation", "p", "None", "operation (None, \"Scale x2\", \"Add 1\", \"Subtract 1\", Differentiate, Integrate)")
	flags.StringP("frequency", "f", "1.0", "signal frequency in Hz")
	flags.StringP("amplitude", "a", "1.0", "signal amplitude")
	flags.Int("samples", 500, "number of points on the time grid")
	flags.Float64("start", 0, "time grid start in seconds")
	flags.Float64("stop", 1, "time grid stop in seconds")
	flags.String("out", "signal.png", "plot image file, format taken from the extension")
	flags.Float64("width", 8, "plot width in inches")
	flags.Float64("height", 4, "plot height in inches")
	flags.Bool("print-data", false, "print the sample data")
	flags.String("data-file", "", "write the sample data to a file")
	flags.Int("precision", 6, "decimal places in sample data")
	flags.String("metrics-log", "", "write render metrics to this log file")
	flags.BoolVar(&plotNoImage, "no-image", false, "skip drawing the plot image")

	flagKeys[plotCmd.Name()] = map[string]string{
		"signal":      "signal.kind",
		"operation":   "signal.operation",
		"frequency":   "signal.frequency",
		"amplitude":   "signal.amplitude",
		"samples":     "grid.samples",
		"start":       "grid.start",
		"stop":        "grid.stop",
		"out":         "plot.output_file",
		"width":       "plot.width",
		"height":      "plot.height",
		"print-data":  "output.print_data",
		"data-file":   "output.file",
		"precision":   "output.precision",
		"metrics-log": "metrics.log_path",
	}
}

func runPlot(cmd *cobra.Command, args []string) error {
	config, err := configs.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	plotter, err := app.NewPlotterApp(&app.Context{
		NoImage: plotNoImage,
		Verbose: verbose,
		Quiet:   quiet,
		Stdout:  cmd.OutOrStdout(),
		Config:  config,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := plotter.Run(ctx); err != nil {
		return err
	}

	if !quiet && !plotNoImage {
		printSuccess("Plot written to %s", config.Plot.OutputFile)
	}
	if !quiet && config.Output.File != "" {
		printSuccess("Sample data written to %s", config.Output.File)
	}

	return nil
}
