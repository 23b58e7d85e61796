package carbon

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/rshade/energy-carbon-metrics/internal/dataset"
)

// Row is one month of base data with its derived metrics.
type Row struct {
	Month             int      `json:"Month" yaml:"Month"`
	TotalEnergy       float64  `json:"Total_Energy" yaml:"Total_Energy"`
	Solar             float64  `json:"Solar" yaml:"Solar"`
	Wind              float64  `json:"Wind" yaml:"Wind"`
	RenewableFraction float64  `json:"Renewable_Fraction" yaml:"Renewable_Fraction"`
	EnergyEfficiency  *float64 `json:"Energy_Efficiency" yaml:"Energy_Efficiency"` // nil when no renewables
	CO2               float64  `json:"CO2" yaml:"CO2"`
	CO2AfterOpt       float64  `json:"CO2_after_opt" yaml:"CO2_after_opt"`
	CO2Predicted      float64  `json:"CO2_predicted" yaml:"CO2_predicted"`
}

// Table is an augmented monthly table. It is read-only once built: accessors
// hand out copies.
type Table struct {
	rows  []Row
	trend Line
}

// Augment derives the metric columns for records and fits the CO2 trend.
//
// CO2_predicted is the value of the single least-squares line of CO2 on Month,
// fitted over all rows, at each row's Month. Values are not rounded.
func Augment(records []dataset.Record) *Table {
	rows := make([]Row, len(records))
	months := make([]float64, len(records))
	co2 := make([]float64, len(records))

	for i, r := range records {
		fraction := RenewableFraction(r.TotalEnergy, r.Solar, r.Wind)
		emitted := CO2(r.TotalEnergy)

		rows[i] = Row{
			Month:             r.Month,
			TotalEnergy:       r.TotalEnergy,
			Solar:             r.Solar,
			Wind:              r.Wind,
			RenewableFraction: fraction,
			EnergyEfficiency:  EnergyEfficiency(r.TotalEnergy, r.Solar, r.Wind),
			CO2:               emitted,
			CO2AfterOpt:       CO2AfterOptimization(emitted, fraction),
		}
		months[i] = float64(r.Month)
		co2[i] = emitted
	}

	trend := FitLine(months, co2)
	for i := range rows {
		rows[i].CO2Predicted = trend.At(months[i])
	}

	return &Table{rows: rows, trend: trend}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns a copy of the table rows.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i, r := range t.rows {
		if r.EnergyEfficiency != nil {
			v := *r.EnergyEfficiency
			r.EnergyEfficiency = &v
		}
		out[i] = r
	}
	return out
}

// Trend returns the CO2-on-Month line used for CO2_predicted.
func (t *Table) Trend() Line {
	return t.trend
}

// Column returns a copy of the named column. A missing Energy_Efficiency value
// is reported as NaN. The second result is false for unknown names.
func (t *Table) Column(name string) ([]float64, bool) {
	pick, ok := columnGetters[name]
	if !ok {
		return nil, false
	}
	out := make([]float64, len(t.rows))
	for i, r := range t.rows {
		out[i] = pick(r)
	}
	return out, true
}

var columnGetters = map[string]func(Row) float64{
	ColMonth:             func(r Row) float64 { return float64(r.Month) },
	ColTotalEnergy:       func(r Row) float64 { return r.TotalEnergy },
	ColSolar:             func(r Row) float64 { return r.Solar },
	ColWind:              func(r Row) float64 { return r.Wind },
	ColRenewableFraction: func(r Row) float64 { return r.RenewableFraction },
	ColEnergyEfficiency: func(r Row) float64 {
		if r.EnergyEfficiency == nil {
			return math.NaN()
		}
		return *r.EnergyEfficiency
	},
	ColCO2:          func(r Row) float64 { return r.CO2 },
	ColCO2AfterOpt:  func(r Row) float64 { return r.CO2AfterOpt },
	ColCO2Predicted: func(r Row) float64 { return r.CO2Predicted },
}

// DataFrame returns the table as a gota DataFrame with the columns in
// Columns order. Month is an integer series, the rest are floats.
func (t *Table) DataFrame() dataframe.DataFrame {
	cols := make([]series.Series, 0, len(Columns))
	for _, name := range Columns {
		values, _ := t.Column(name)
		if name == ColMonth {
			months := make([]int, len(values))
			for i, v := range values {
				months[i] = int(v)
			}
			cols = append(cols, series.New(months, series.Int, name))
			continue
		}
		cols = append(cols, series.New(values, series.Float, name))
	}
	return dataframe.New(cols...)
}
