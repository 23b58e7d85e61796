// Package dataset produces the monthly energy table consumed by the carbon
// metric engine, either from an external tabular file or from seeded
// synthetic data.
package dataset

// Column names recognised in an input source header.
const (
	ColMonth       = "Month"
	ColTotalEnergy = "Total_Energy"
	ColSolar       = "Solar"
	ColWind        = "Wind"
)

// RequiredColumns lists the base columns every input source must carry.
var RequiredColumns = []string{ColMonth, ColTotalEnergy, ColSolar, ColWind}

// Record is one month of base energy data. Energy values are in kWh.
type Record struct {
	Month       int     `json:"Month" yaml:"Month"`
	TotalEnergy float64 `json:"Total_Energy" yaml:"Total_Energy"`
	Solar       float64 `json:"Solar" yaml:"Solar"`
	Wind        float64 `json:"Wind" yaml:"Wind"`
}

// Renewable returns Solar + Wind.
func (r Record) Renewable() float64 {
	return r.Solar + r.Wind
}
