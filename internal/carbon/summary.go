package carbon

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds year-level observations over an augmented table.
type Summary struct {
	Months int `json:"months" yaml:"months"`

	HighestRenewableMonth    int     `json:"highest_renewable_month" yaml:"highest_renewable_month"`
	HighestRenewableFraction float64 `json:"highest_renewable_fraction" yaml:"highest_renewable_fraction"`
	HighestCO2Month          int     `json:"highest_co2_month" yaml:"highest_co2_month"`
	HighestCO2               float64 `json:"highest_co2" yaml:"highest_co2"`
	AverageRenewableFraction float64 `json:"average_renewable_fraction" yaml:"average_renewable_fraction"`

	TotalEnergy      float64 `json:"total_energy" yaml:"total_energy"`
	TotalCO2         float64 `json:"total_co2" yaml:"total_co2"`
	TotalCO2AfterOpt float64 `json:"total_co2_after_opt" yaml:"total_co2_after_opt"`
	AvoidedCO2       float64 `json:"avoided_co2" yaml:"avoided_co2"`

	CO2Trend Line `json:"co2_trend" yaml:"co2_trend"`
}

// Summarize reports the months with the highest renewable fraction and the
// highest CO2 (earliest row wins ties), the mean renewable fraction, annual
// totals and the fitted CO2 trend. An empty table yields a zero Summary.
func Summarize(t *Table) Summary {
	if t == nil || t.Len() == 0 {
		return Summary{}
	}

	months, _ := t.Column(ColMonth)
	fractions, _ := t.Column(ColRenewableFraction)
	co2, _ := t.Column(ColCO2)
	afterOpt, _ := t.Column(ColCO2AfterOpt)
	energy, _ := t.Column(ColTotalEnergy)

	renewableIdx := floats.MaxIdx(fractions)
	co2Idx := floats.MaxIdx(co2)

	totalCO2 := floats.Sum(co2)
	totalAfterOpt := floats.Sum(afterOpt)

	return Summary{
		Months:                   t.Len(),
		HighestRenewableMonth:    int(months[renewableIdx]),
		HighestRenewableFraction: fractions[renewableIdx],
		HighestCO2Month:          int(months[co2Idx]),
		HighestCO2:               co2[co2Idx],
		AverageRenewableFraction: stat.Mean(fractions, nil),
		TotalEnergy:              floats.Sum(energy),
		TotalCO2:                 totalCO2,
		TotalCO2AfterOpt:         totalAfterOpt,
		AvoidedCO2:               totalCO2 - totalAfterOpt,
		CO2Trend:                 t.Trend(),
	}
}
