package render

import (
	"bytes"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/RyanBlaney/latency-benchmark-common/logging"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ImageOptions controls how a plot is drawn to an image file
type ImageOptions struct {
	OutputFile     string
	Width          vg.Length
	Height         vg.Length
	XLabel         string
	YLabel         string
	OriginalLabel  string
	ProcessedLabel string
}

// DefaultImageOptions returns an 8x4 inch canvas with the standard labels
func DefaultImageOptions(outputFile string) ImageOptions {
	return ImageOptions{
		OutputFile:     outputFile,
		Width:          8 * vg.Inch,
		Height:         4 * vg.Inch,
		XLabel:         "Time (s)",
		YLabel:         "Amplitude",
		OriginalLabel:  "Original Signal",
		ProcessedLabel: "Processed Signal",
	}
}

var imageFormats = map[string]string{
	".png":  "png",
	".svg":  "svg",
	".pdf":  "pdf",
	".eps":  "eps",
	".jpg":  "jpg",
	".jpeg": "jpg",
	".tif":  "tif",
	".tiff": "tif",
}

// ImageFormat returns the encoder name for a file's extension
func ImageFormat(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := imageFormats[ext]
	if !ok {
		return "", fmt.Errorf("unsupported image extension %q", ext)
	}
	return format, nil
}

// ImageSink draws plots with gonum/plot and writes them to a file
type ImageSink struct {
	opts   ImageOptions
	logger logging.Logger
}

// NewImageSink creates an image sink. The output extension picks the format.
func NewImageSink(opts ImageOptions, logger logging.Logger) (*ImageSink, error) {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	if opts.OutputFile == "" {
		return nil, fmt.Errorf("output file is required")
	}
	if _, err := ImageFormat(opts.OutputFile); err != nil {
		return nil, err
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("image dimensions must be positive: %vx%v", opts.Width, opts.Height)
	}

	return &ImageSink{
		opts:   opts,
		logger: logger,
	}, nil
}

// Stage draws p into memory and writes it to a temp file beside the output.
// The output file itself is only replaced on commit.
func (s *ImageSink) Stage(p *Plot) (Staged, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plot: %w", err)
	}

	data, err := s.encode(p)
	if err != nil {
		return nil, err
	}

	staged, err := stageFile(s.opts.OutputFile, data)
	if err != nil {
		return nil, fmt.Errorf("failed to stage image file: %w", err)
	}

	s.logger.Debug("Plot staged", logging.Fields{
		"output_file": s.opts.OutputFile,
		"title":       p.Title,
		"samples":     len(p.Time),
		"size_bytes":  len(data),
	})

	return staged, nil
}

func (s *ImageSink) encode(p *Plot) ([]byte, error) {
	canvas := plot.New()
	canvas.Title.Text = p.Title
	canvas.X.Label.Text = s.opts.XLabel
	canvas.Y.Label.Text = s.opts.YLabel
	canvas.Add(plotter.NewGrid())

	original := plotter.DefaultLineStyle
	original.Color = plotutil.Color(0)

	processed := plotter.DefaultLineStyle
	processed.Color = plotutil.Color(1)
	processed.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}

	if err := addSeries(canvas, s.opts.OriginalLabel, original, p.Time, p.Original); err != nil {
		return nil, fmt.Errorf("failed to build original line: %w", err)
	}
	if err := addSeries(canvas, s.opts.ProcessedLabel, processed, p.Time, p.Processed); err != nil {
		return nil, fmt.Errorf("failed to build processed line: %w", err)
	}
	canvas.Legend.Top = true

	format, err := ImageFormat(s.opts.OutputFile)
	if err != nil {
		return nil, err
	}

	writer, err := canvas.WriterTo(s.opts.Width, s.opts.Height, format)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s encoder: %w", format, err)
	}

	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode %s image: %w", format, err)
	}

	return buf.Bytes(), nil
}

// addSeries draws one line per run of plottable samples and a single legend
// entry for the series, even when nothing in it can be drawn
func addSeries(canvas *plot.Plot, label string, style draw.LineStyle, x, y []float64) error {
	for _, pts := range segments(x, y) {
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle = style
		canvas.Add(line)
	}

	canvas.Legend.Add(label, &plotter.Line{LineStyle: style})
	return nil
}

// maxPlottable bounds sample magnitudes so the axis span stays finite
const maxPlottable = math.MaxFloat64 / 4

func plottable(v float64) bool {
	return !math.IsNaN(v) && math.Abs(v) <= maxPlottable
}

// segments splits the series at samples that cannot be drawn, leaving a gap
func segments(x, y []float64) []plotter.XYs {
	var (
		out []plotter.XYs
		cur plotter.XYs
	)
	for i := range x {
		if !plottable(x[i]) || !plottable(y[i]) {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: x[i], Y: y[i]})
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}
