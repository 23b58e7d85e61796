package report

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/energy-carbon-metrics/internal/carbon"
	"github.com/rshade/energy-carbon-metrics/internal/dataset"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{" yml ", FormatYAML, false},
		{"csv", FormatCSV, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWritePrediction_JSONKeys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePrediction(&buf, FormatJSON, carbon.PredictSingle(300, 100, 50, 1)))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, map[string]any{
		"CO2_Original":           150.0,
		"CO2_After_Optimization": 75.0,
		"CO2_Predicted":          150.0,
		"Renewable_Fraction":     0.5,
		"Energy_Efficiency":      2.0,
	}, got)
}

func TestWritePrediction_MissingEfficiencyIsNull(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePrediction(&buf, FormatJSON, carbon.PredictSingle(0, 0, 0, 5)))
	assert.Contains(t, buf.String(), `"Energy_Efficiency": null`)

	buf.Reset()
	require.NoError(t, WritePrediction(&buf, FormatYAML, carbon.PredictSingle(0, 0, 0, 5)))
	assert.Contains(t, buf.String(), "Energy_Efficiency: null")
}

func TestWritePrediction_CSVUnsupported(t *testing.T) {
	err := WritePrediction(&bytes.Buffer{}, FormatCSV, carbon.PredictSingle(1, 1, 1, 1))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWriteTable(t *testing.T) {
	table := carbon.Augment(dataset.Synthesize(dataset.NewRand(dataset.DefaultSeed)))

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteTable(&buf, FormatJSON, table))

		var rows []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
		require.Len(t, rows, 12)
		for _, name := range carbon.Columns {
			assert.Contains(t, rows[0], name)
		}
		assert.Equal(t, 1.0, rows[0]["Month"])
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteTable(&buf, FormatYAML, table))

		var rows []carbon.Row
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rows))
		assert.Equal(t, table.Rows(), rows)
	})

	t.Run("csv", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteTable(&buf, FormatCSV, table))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 13)
		assert.Equal(t, strings.Join(carbon.Columns, ","), lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "1,"))
	})
}

func TestWriteTable_CSVKeepsFullPrecision(t *testing.T) {
	table := carbon.Augment([]dataset.Record{
		{Month: 1, TotalEnergy: 3, Solar: 1, Wind: 0},
		{Month: 2, TotalEnergy: 7e-7, Solar: 1e-7, Wind: 0},
		{Month: 3, TotalEnergy: 300, Solar: 0, Wind: 0},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, FormatCSV, table))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, carbon.Columns, records[0])

	rows := table.Rows()
	for i, rec := range records[1:] {
		want, _ := json.Marshal(rows[i])
		var wantRow map[string]any
		require.NoError(t, json.Unmarshal(want, &wantRow))

		for j, name := range carbon.Columns {
			if name == carbon.ColEnergyEfficiency && rows[i].EnergyEfficiency == nil {
				assert.Equal(t, "NaN", rec[j])
				continue
			}
			got, err := strconv.ParseFloat(rec[j], 64)
			require.NoError(t, err, "%s row %d", name, i+1)
			assert.Equal(t, wantRow[name], got, "%s row %d", name, i+1)
		}
	}

	// 1/3 survives exactly rather than as 0.333333.
	assert.Equal(t, strconv.FormatFloat(1.0/3.0, 'g', -1, 64), records[1][4])
	assert.Equal(t, "1e-07", records[2][2])
	assert.Equal(t, "300", records[3][1])
}

func TestWriteSummary(t *testing.T) {
	table := carbon.Augment(dataset.Synthesize(dataset.NewRand(dataset.DefaultSeed)))

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, FormatYAML, carbon.Summarize(table)))

	var got carbon.Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 12, got.Months)
	assert.Equal(t, table.Trend().Slope, got.CO2Trend.Slope)

	assert.ErrorIs(t, WriteSummary(&bytes.Buffer{}, FormatCSV, got), ErrUnsupportedFormat)
}
