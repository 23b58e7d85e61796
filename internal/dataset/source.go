package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/xuri/excelize/v2"
)

var (
	// ErrSourceUnreadable is returned when the input file cannot be opened or read.
	ErrSourceUnreadable = errors.New("source unreadable")

	// ErrSourceMalformed is returned when the input parses but does not hold a usable table.
	ErrSourceMalformed = errors.New("source malformed")

	// ErrMissingColumn is returned when a required column is absent from the header.
	ErrMissingColumn = errors.New("required column missing")
)

// utf8BOM is written at the start of "CSV UTF-8" exports by spreadsheet tools.
const utf8BOM = "\ufeff"

// readSource parses the file at path into base records.
// Spreadsheets (.xlsx) are read from their first sheet; anything else is
// treated as delimited text with a header row.
func readSource(path string) ([]Record, error) {
	var df dataframe.DataFrame
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		df, err = readSpreadsheet(path)
	default:
		df, err = readDelimited(path)
	}
	if err != nil {
		return nil, err
	}
	return recordsFromFrame(df)
}

func readDelimited(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	defer func() { _ = f.Close() }()

	r := bufio.NewReader(f)
	if bom, err := r.Peek(len(utf8BOM)); err == nil && string(bom) == utf8BOM {
		_, _ = r.Discard(len(utf8BOM))
	}

	df := dataframe.ReadCSV(r)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %w", ErrSourceMalformed, df.Err)
	}
	return df, nil
}

func readSpreadsheet(path string) (dataframe.DataFrame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: workbook has no sheets", ErrSourceMalformed)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	if len(rows) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: sheet %q is empty", ErrSourceMalformed, sheets[0])
	}

	// GetRows drops trailing empty cells; gota needs rectangular records.
	width := len(rows[0])
	for i, row := range rows {
		if len(row) > width {
			return dataframe.DataFrame{}, fmt.Errorf("%w: row %d wider than header", ErrSourceMalformed, i+1)
		}
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row
	}

	df := dataframe.LoadRecords(rows)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %w", ErrSourceMalformed, df.Err)
	}
	return df, nil
}

// recordsFromFrame extracts the required columns from df. Every value must be
// numeric and finite, and Month must be integral.
func recordsFromFrame(df dataframe.DataFrame) ([]Record, error) {
	if df.Nrow() == 0 {
		return nil, fmt.Errorf("%w: no data rows", ErrSourceMalformed)
	}

	present := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		present[name] = true
	}

	cols := make(map[string][]float64, len(RequiredColumns))
	for _, name := range RequiredColumns {
		if !present[name] {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		s := df.Col(name)
		if s.Err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMissingColumn, name, s.Err)
		}
		values := s.Float()
		for i, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %s row %d is not numeric", ErrSourceMalformed, name, i+1)
			}
		}
		cols[name] = values
	}

	records := make([]Record, df.Nrow())
	for i := range records {
		month := cols[ColMonth][i]
		if month != math.Trunc(month) {
			return nil, fmt.Errorf("%w: Month row %d is not an integer: %v", ErrSourceMalformed, i+1, month)
		}
		records[i] = Record{
			Month:       int(month),
			TotalEnergy: cols[ColTotalEnergy][i],
			Solar:       cols[ColSolar][i],
			Wind:        cols[ColWind][i],
		}
	}
	return records, nil
}
