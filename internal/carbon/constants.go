// Package carbon derives renewable-share and CO2 metrics from monthly energy
// data and fits a simple CO2 trend across months.
package carbon

const (
	// EmissionFactor converts energy to CO2 in this simplified model
	// (CO2 units per kWh).
	EmissionFactor = 0.5

	// PredictionDecimals is the rounding applied to single-record predictions.
	PredictionDecimals = 2
)

// Consumer-facing column names of an augmented Table.
const (
	ColMonth             = "Month"
	ColTotalEnergy       = "Total_Energy"
	ColSolar             = "Solar"
	ColWind              = "Wind"
	ColRenewableFraction = "Renewable_Fraction"
	ColEnergyEfficiency  = "Energy_Efficiency"
	ColCO2               = "CO2"
	ColCO2AfterOpt       = "CO2_after_opt"
	ColCO2Predicted      = "CO2_predicted"
)

// Columns lists the Table columns in output order.
var Columns = []string{
	ColMonth,
	ColTotalEnergy,
	ColSolar,
	ColWind,
	ColRenewableFraction,
	ColEnergyEfficiency,
	ColCO2,
	ColCO2AfterOpt,
	ColCO2Predicted,
}
