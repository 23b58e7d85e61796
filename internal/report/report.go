// Package report serialises augmented tables, predictions and summaries for
// consumers of the metric engine.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/rshade/energy-carbon-metrics/internal/carbon"
)

// Format is an output encoding.
type Format string

// Supported output formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// ErrUnsupportedFormat is returned for a format the value cannot be written in.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ParseFormat maps a user-supplied name to a Format. Matching is case-insensitive
// and "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// WriteTable writes the table rows in the given format. CSV output has one
// header row with the carbon.Columns names; a missing efficiency is written
// as NaN.
func WriteTable(w io.Writer, f Format, t *carbon.Table) error {
	if f == FormatCSV {
		return writeTableCSV(w, t)
	}
	return encode(w, f, t.Rows())
}

// writeTableCSV writes every value with the shortest representation that
// parses back to the same float64.
func writeTableCSV(w io.Writer, t *carbon.Table) error {
	cols := make([][]float64, len(carbon.Columns))
	for i, name := range carbon.Columns {
		cols[i], _ = t.Column(name)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(carbon.Columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	record := make([]string, len(cols))
	for row := 0; row < t.Len(); row++ {
		for i, col := range cols {
			record[i] = strconv.FormatFloat(col[row], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", row+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePrediction writes a single-record prediction. CSV is not supported.
func WritePrediction(w io.Writer, f Format, p carbon.PredictionResult) error {
	return encode(w, f, p)
}

// WriteSummary writes a table summary. CSV is not supported.
func WriteSummary(w io.Writer, f Format, s carbon.Summary) error {
	return encode(w, f, s)
}

func encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
