package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"syscall"
	"time"

	"github.com/RyanBlaney/latency-benchmark-common/logging"
	"github.com/tunein/go-logging/v7/pkg/logger"
	"github.com/tunein/go-logging/v7/pkg/logger/logtypes"
	"github.com/tunein/go-logging/v7/pkg/rootcollector"
	"github.com/tunein/go-logging/v7/pkg/rootlogger"
	"gonum.org/v1/plot/vg"

	"github.com/RyanBlaney/signal-plotter/configs"
	"github.com/RyanBlaney/signal-plotter/pkg/render"
	"github.com/RyanBlaney/signal-plotter/pkg/signal"
	"github.com/RyanBlaney/signal-plotter/pkg/transform"
)

// Context holds the application context and configuration
type Context struct {
	// CLI arguments
	NoImage bool
	Verbose bool
	Quiet   bool

	// Stdout receives sample data when no data file is configured
	Stdout io.Writer

	// Runtime context
	Logger logging.Logger
	Config *configs.Config
}

// PlotterApp handles the render lifecycle
type PlotterApp struct {
	ctx    *Context
	config *configs.Config
	logger logging.Logger
	sinks  []render.Sink
}

// NewPlotterApp creates a new plotter application
func NewPlotterApp(ctx *Context) (*PlotterApp, error) {
	config := ctx.Config
	if config == nil {
		config = configs.GetDefaultConfig()
		ctx.Config = config
	}

	if err := configs.ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Set up logging
	logger, err := setupLogging(ctx, config)
	if err != nil {
		return nil, err
	}
	ctx.Logger = logger

	app := &PlotterApp{
		ctx:    ctx,
		config: config,
		logger: logger,
	}

	sinks, err := app.buildSinks()
	if err != nil {
		return nil, fmt.Errorf("failed to create render sinks: %w", err)
	}
	app.sinks = sinks

	logger.Debug("Plotter application initialized", logging.Fields{
		"signal":      config.Signal.Kind,
		"operation":   config.Signal.Operation,
		"samples":     config.Grid.Samples,
		"output_file": config.Plot.OutputFile,
		"sinks":       len(sinks),
		"log_level":   config.LogLevel,
	})

	return app, nil
}

// Run validates the parameters, computes both sequences and hands them to
// every sink. Invalid parameters return an *InputError before anything is
// computed or written, and no output is replaced unless every sink staged
// its output.
func (app *PlotterApp) Run(ctx context.Context) error {
	start := time.Now()
	cfg := app.config.Signal

	req, err := ParseRequest(cfg.Kind, cfg.Operation, cfg.Frequency, cfg.Amplitude)
	if err != nil {
		app.logger.Warn("Rejected render parameters", logging.Fields{
			"frequency": cfg.Frequency,
			"amplitude": cfg.Amplitude,
			"error":     err.Error(),
		})
		return err
	}

	if !req.Kind.Supported() {
		app.logger.Debug("Unknown signal kind, using zero signal", logging.Fields{
			"signal": req.Kind.String(),
		})
	}
	if !req.Operation.Supported() {
		app.logger.Debug("Unknown operation, passing signal through", logging.Fields{
			"operation": req.Operation.String(),
		})
	}

	plot := app.Compute(req)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("render cancelled: %w", err)
	}
	if err := render.Render(plot, app.sinks...); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	app.collectRenderMetrics(plot, time.Since(start))

	app.logger.Debug("Render completed", logging.Fields{
		"title":    plot.Title,
		"samples":  len(plot.Time),
		"duration": time.Since(start).Seconds(),
	})

	return nil
}

// Compute samples the configured time grid and runs the generator and the
// transform over it
func (app *PlotterApp) Compute(req *RenderRequest) *render.Plot {
	grid := signal.Linspace(app.config.Grid.Start, app.config.Grid.Stop, app.config.Grid.Samples)
	original := signal.Generate(req.Kind, grid, req.Frequency, req.Amplitude)
	processed := transform.Apply(original, req.Operation)

	return &render.Plot{
		Title:     render.Title(req.Kind, req.Operation),
		Kind:      req.Kind,
		Operation: req.Operation,
		Time:      grid,
		Original:  original,
		Processed: processed,
	}
}

// buildSinks creates the image sink and, when requested, the data sink
func (app *PlotterApp) buildSinks() ([]render.Sink, error) {
	var sinks []render.Sink

	if !app.ctx.NoImage {
		opts := render.ImageOptions{
			OutputFile:     app.config.Plot.OutputFile,
			Width:          vg.Length(app.config.Plot.Width) * vg.Inch,
			Height:         vg.Length(app.config.Plot.Height) * vg.Inch,
			XLabel:         app.config.Plot.XLabel,
			YLabel:         app.config.Plot.YLabel,
			OriginalLabel:  app.config.Plot.OriginalLabel,
			ProcessedLabel: app.config.Plot.ProcessedLabel,
		}

		imageSink, err := render.NewImageSink(opts, app.logger)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, imageSink)
	}

	format, precision := app.config.OutputFormat, app.config.Output.Precision
	switch {
	case app.config.Output.File != "":
		sinks = append(sinks, render.NewDataFileSink(app.config.Output.File, format, precision, app.logger))
	case app.config.Output.PrintData:
		stdout := app.ctx.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}
		sinks = append(sinks, render.NewDataSink(stdout, format, precision, app.logger))
	}

	if len(sinks) == 0 {
		return nil, fmt.Errorf("nothing to render: image output disabled and no data output requested")
	}

	return sinks, nil
}

// setupLogging applies the configured level, raised to debug by verbose
// and lowered to errors only by quiet
func setupLogging(ctx *Context, config *configs.Config) (logging.Logger, error) {
	level, err := logLevel(ctx, config)
	if err != nil {
		return nil, err
	}

	logger := ctx.Logger
	if logger == nil {
		logging.SetLevel(level)
		logger = logging.WithFields(logging.Fields{
			"component": "signal_plotter",
		})
	}
	logger.SetLevel(level)

	return logger, nil
}

func logLevel(ctx *Context, config *configs.Config) (logging.Level, error) {
	switch {
	case ctx.Quiet:
		return logging.ErrorLevel, nil
	case ctx.Verbose || config.Verbose:
		return logging.DebugLevel, nil
	default:
		return configs.ParseLogLevel(config.LogLevel)
	}
}

// collectRenderMetrics sends render size and timing to rootcollector
func (app *PlotterApp) collectRenderMetrics(plot *render.Plot, elapsed time.Duration) {
	if app.config.Metrics.LogPath == "" {
		return
	}

	err := rootlogger.Configure(logger.LogOptions{
		Out:          app.config.Metrics.LogPath,
		ReopenSignal: syscall.SIGHUP,
		Level:        logtypes.InfoLevel,
	})
	if err != nil {
		app.logger.Error(err, "Failed configuring metrics log writer")
		return
	}

	tags := []string{
		"signal:" + plot.Kind.String(),
		"operation:" + plot.Operation.String(),
	}

	rootcollector.Metric("signal.render.duration.microseconds", elapsed.Microseconds(), tags)
	rootcollector.Metric("signal.render.samples", int64(len(plot.Time)), tags)
}
