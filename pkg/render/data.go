package render

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/RyanBlaney/latency-benchmark-common/logging"
	"github.com/RyanBlaney/latency-benchmark-common/output"
)

// Sample is one grid point of the data output
type Sample struct {
	Time      float64 `json:"time" yaml:"time"`
	Original  float64 `json:"original" yaml:"original"`
	Processed float64 `json:"processed" yaml:"processed"`
}

// Document is the data output shared by every format
type Document struct {
	Title     string   `json:"title" yaml:"title"`
	Signal    string   `json:"signal" yaml:"signal"`
	Operation string   `json:"operation" yaml:"operation"`
	Count     int      `json:"count" yaml:"count"`
	Samples   []Sample `json:"samples" yaml:"samples"`
}

var sampleColumns = []string{"time", "original", "processed"}

func (s Sample) cells() []string {
	return []string{formatSample(s.Time), formatSample(s.Original), formatSample(s.Processed)}
}

func formatSample(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CSVFormatter writes a header row and one row per sample
type CSVFormatter struct{}

func (f *CSVFormatter) Format(data any, prettyPrint bool) ([]byte, error) {
	doc, err := asDocument(data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(sampleColumns); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, sample := range doc.Samples {
		if err := writer.Write(sample.cells()); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// TableFormatter writes a titled, column-aligned sample table
type TableFormatter struct{}

func (f *TableFormatter) Format(data any, prettyPrint bool) ([]byte, error) {
	doc, err := asDocument(data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	title := strings.ToUpper(doc.Title)
	fmt.Fprintf(&buf, "%s\n%s\n\n", title, strings.Repeat("=", len(title)))
	fmt.Fprintf(&buf, "Samples: %s\n\n", output.ConvertValueToString(doc.Count))

	padding := 1
	if prettyPrint {
		padding = 3
	}
	tw := tabwriter.NewWriter(&buf, 0, 0, padding, ' ', 0)

	header := make([]string, len(sampleColumns))
	rule := make([]string, len(sampleColumns))
	for i, col := range sampleColumns {
		header[i] = strings.ToUpper(col)
		rule[i] = strings.Repeat("-", len(col))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, strings.Join(rule, "\t"))
	for _, sample := range doc.Samples {
		fmt.Fprintln(tw, strings.Join(sample.cells(), "\t"))
	}

	if err := tw.Flush(); err != nil {
		return nil, fmt.Errorf("failed to lay out table: %w", err)
	}

	return buf.Bytes(), nil
}

func asDocument(data any) (*Document, error) {
	doc, ok := data.(*Document)
	if !ok {
		return nil, fmt.Errorf("expected sample document, got %T", data)
	}
	return doc, nil
}

// NewFormatter returns the formatter for a format name, json by default
func NewFormatter(format string) output.Formatter {
	switch format {
	case "json":
		return &output.JSONFormatter{}
	case "yaml":
		return &output.YAMLFormatter{}
	case "csv":
		return &CSVFormatter{}
	case "table":
		return &TableFormatter{}
	default:
		return &output.JSONFormatter{}
	}
}

// DataSink writes the sampled sequences through an output formatter, either
// to a stream or to a file
type DataSink struct {
	w         io.Writer
	path      string
	formatter output.Formatter
	precision int
	logger    logging.Logger
}

// NewDataSink creates a sink writing to w in the given format with values
// rounded to precision decimal places
func NewDataSink(w io.Writer, format string, precision int, logger logging.Logger) *DataSink {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	return &DataSink{
		w:         w,
		formatter: NewFormatter(format),
		precision: precision,
		logger:    logger,
	}
}

// NewDataFileSink creates a sink that replaces the file at path
func NewDataFileSink(path, format string, precision int, logger logging.Logger) *DataSink {
	sink := NewDataSink(nil, format, precision, logger)
	sink.path = path
	return sink
}

// Stage formats the plot's samples. File output goes to a temp file; stream
// output is held in memory and written in a single call on commit.
func (s *DataSink) Stage(p *Plot) (Staged, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plot: %w", err)
	}

	formatted, err := s.formatter.Format(s.document(p), true)
	if err != nil {
		return nil, fmt.Errorf("failed to format sample data: %w", err)
	}

	s.logger.Debug("Sample data staged", logging.Fields{
		"samples":     len(p.Time),
		"size_bytes":  len(formatted),
		"output_file": s.path,
	})

	if s.path == "" {
		return &stagedWrite{w: s.w, data: formatted}, nil
	}

	staged, err := stageFile(s.path, formatted)
	if err != nil {
		return nil, fmt.Errorf("failed to stage data file: %w", err)
	}
	return staged, nil
}

func (s *DataSink) document(p *Plot) *Document {
	samples := make([]Sample, len(p.Time))
	for i := range p.Time {
		samples[i] = Sample{
			Time:      s.round(p.Time[i]),
			Original:  s.round(p.Original[i]),
			Processed: s.round(p.Processed[i]),
		}
	}

	return &Document{
		Title:     p.Title,
		Signal:    p.Kind.String(),
		Operation: p.Operation.String(),
		Count:     len(p.Time),
		Samples:   samples,
	}
}

// round also maps NaN and Inf to 0 since json cannot encode them
func (s *DataSink) round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	scale := math.Pow(10, float64(s.precision))
	rounded := math.Round(v*scale) / scale
	if math.IsInf(rounded, 0) {
		// too large for any fractional digits to matter
		return v
	}
	return rounded
}
