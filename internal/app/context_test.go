package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RyanBlaney/latency-benchmark-common/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/RyanBlaney/signal-plotter/configs"
)

// PlotterAppTestSuite runs the render pipeline against a temp directory
type PlotterAppTestSuite struct {
	suite.Suite
	dir    string
	config *configs.Config
	stdout *bytes.Buffer
}

func (suite *PlotterAppTestSuite) SetupTest() {
	suite.dir = suite.T().TempDir()
	suite.stdout = &bytes.Buffer{}

	suite.config = configs.GetDefaultConfig()
	suite.config.Grid.Samples = 100
	suite.config.OutputFormat = "json"
	suite.config.Plot.OutputFile = filepath.Join(suite.dir, "signal.png")
}

func (suite *PlotterAppTestSuite) newApp(noImage bool) *PlotterApp {
	app, err := NewPlotterApp(&Context{
		NoImage: noImage,
		Stdout:  suite.stdout,
		Logger:  logging.NewDefaultLogger(),
		Config:  suite.config,
	})
	suite.Require().NoError(err)
	return app
}

func (suite *PlotterAppTestSuite) TestRunWritesImage() {
	suite.config.Signal.Kind = "Square"
	suite.config.Signal.Operation = "Integrate"

	suite.Require().NoError(suite.newApp(false).Run(context.Background()))
	suite.FileExists(suite.config.Plot.OutputFile)
}

func (suite *PlotterAppTestSuite) TestRunPrintsData() {
	suite.config.Output.PrintData = true

	suite.Require().NoError(suite.newApp(true).Run(context.Background()))
	suite.Contains(suite.stdout.String(), "Sine Signal with None")
	suite.NoFileExists(suite.config.Plot.OutputFile)
}

func (suite *PlotterAppTestSuite) TestRunWritesDataFile() {
	suite.config.Output.File = filepath.Join(suite.dir, "data", "samples.json")

	suite.Require().NoError(suite.newApp(true).Run(context.Background()))
	suite.FileExists(suite.config.Output.File)
	suite.Zero(suite.stdout.Len())
}

// TestRunInvalidFrequency checks invalid input aborts before anything is written.
func (suite *PlotterAppTestSuite) TestRunInvalidFrequency() {
	suite.config.Signal.Frequency = "abc"
	suite.config.Output.PrintData = true
	suite.config.Output.File = filepath.Join(suite.dir, "samples.json")

	previous := []byte("previous image")
	suite.Require().NoError(os.WriteFile(suite.config.Plot.OutputFile, previous, 0644))

	err := suite.newApp(false).Run(context.Background())

	var inputErr *InputError
	suite.Require().True(errors.As(err, &inputErr))
	suite.Equal("frequency", inputErr.Field)

	got, readErr := os.ReadFile(suite.config.Plot.OutputFile)
	suite.Require().NoError(readErr)
	suite.Equal(previous, got)
	suite.NoFileExists(suite.config.Output.File)
	suite.Zero(suite.stdout.Len())
}

func (suite *PlotterAppTestSuite) TestRunCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := suite.newApp(false).Run(ctx)
	suite.ErrorIs(err, context.Canceled)
	suite.NoFileExists(suite.config.Plot.OutputFile)
}

func (suite *PlotterAppTestSuite) TestComputeUnknownKindIsZero() {
	app := suite.newApp(false)
	plot := app.Compute(&RenderRequest{Kind: "Noise", Operation: "None", Frequency: 2, Amplitude: 3})

	suite.Len(plot.Original, 100)
	suite.Len(plot.Processed, 100)
	for _, v := range plot.Original {
		suite.Zero(v)
	}
	suite.Equal("Noise Signal with None", plot.Title)
}

func (suite *PlotterAppTestSuite) TestComputeAddOne() {
	app := suite.newApp(false)
	plot := app.Compute(&RenderRequest{Kind: "Sawtooth", Operation: "Add 1", Frequency: 4, Amplitude: 1})

	suite.Require().Len(plot.Processed, len(plot.Original))
	for i := range plot.Original {
		suite.Equal(plot.Original[i]+1, plot.Processed[i])
	}
}

func (suite *PlotterAppTestSuite) TestNewPlotterAppRejectsNoSinks() {
	_, err := NewPlotterApp(&Context{
		NoImage: true,
		Logger:  logging.NewDefaultLogger(),
		Config:  suite.config,
	})
	suite.Error(err)
}

func (suite *PlotterAppTestSuite) TestNewPlotterAppRejectsInvalidConfig() {
	suite.config.Grid.Samples = 0

	_, err := NewPlotterApp(&Context{
		Logger: logging.NewDefaultLogger(),
		Config: suite.config,
	})
	suite.Error(err)
}

func (suite *PlotterAppTestSuite) TestRunPrintsEverySampleAsCSV() {
	suite.config.Output.PrintData = true
	suite.config.OutputFormat = "csv"
	suite.config.Grid.Samples = 5
	suite.config.Signal.Operation = "Add 1"

	suite.Require().NoError(suite.newApp(true).Run(context.Background()))

	lines := strings.Split(strings.TrimSpace(suite.stdout.String()), "\n")
	suite.Require().Len(lines, 6)
	suite.Equal("time,original,processed", lines[0])
	suite.Equal("0,0,1", lines[1])
	suite.Equal("0.25,1,2", lines[2])
}

// TestRunKeepsImageWhenDataFileFails checks that a data file that cannot be
// created leaves the existing image untouched.
func (suite *PlotterAppTestSuite) TestRunKeepsImageWhenDataFileFails() {
	previous := []byte("previous image")
	suite.Require().NoError(os.WriteFile(suite.config.Plot.OutputFile, previous, 0644))

	blocker := filepath.Join(suite.dir, "blocker")
	suite.Require().NoError(os.WriteFile(blocker, []byte("file"), 0644))
	suite.config.Output.File = filepath.Join(blocker, "samples.json")

	suite.Error(suite.newApp(false).Run(context.Background()))

	got, err := os.ReadFile(suite.config.Plot.OutputFile)
	suite.Require().NoError(err)
	suite.Equal(previous, got)
}

func (suite *PlotterAppTestSuite) TestRunDrawsOverflowingAmplitude() {
	suite.config.Signal.Amplitude = "1e308"
	suite.config.Signal.Operation = "Scale x2"
	suite.config.Output.File = filepath.Join(suite.dir, "samples.json")

	suite.Require().NoError(suite.newApp(false).Run(context.Background()))
	suite.FileExists(suite.config.Plot.OutputFile)
	suite.FileExists(suite.config.Output.File)
}

func (suite *PlotterAppTestSuite) TestNewPlotterAppAppliesLogLevel() {
	suite.config.LogLevel = "warn"
	logger := &levelLogger{}

	_, err := NewPlotterApp(&Context{
		Logger: logger,
		Config: suite.config,
	})
	suite.Require().NoError(err)
	suite.Equal(logging.WarnLevel, logger.level)
}

func (suite *PlotterAppTestSuite) TestNewPlotterAppRejectsUnknownLogLevel() {
	suite.config.LogLevel = "chatty"

	_, err := NewPlotterApp(&Context{
		Logger: &levelLogger{},
		Config: suite.config,
	})
	suite.Error(err)
}

func TestPlotterAppTestSuite(t *testing.T) {
	suite.Run(t, new(PlotterAppTestSuite))
}

// levelLogger discards output and remembers the last level it was given
type levelLogger struct {
	logging.NoOpLogger
	level logging.Level
}

func (l *levelLogger) SetLevel(level logging.Level) {
	l.level = level
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		ctx     Context
		level   string
		verbose bool
		want    logging.Level
	}{
		{"configured", Context{}, "error", false, logging.ErrorLevel},
		{"default", Context{}, "info", false, logging.InfoLevel},
		{"verbose flag", Context{Verbose: true}, "warn", false, logging.DebugLevel},
		{"verbose config", Context{}, "info", true, logging.DebugLevel},
		{"quiet", Context{Quiet: true}, "debug", false, logging.ErrorLevel},
		{"quiet beats verbose", Context{Quiet: true, Verbose: true}, "info", false, logging.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := configs.GetDefaultConfig()
			config.LogLevel = tt.level
			config.Verbose = tt.verbose

			got, err := logLevel(&tt.ctx, config)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
