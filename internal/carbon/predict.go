package carbon

// PredictionResult holds the metrics for a single ad-hoc energy reading.
// All values are rounded to PredictionDecimals.
type PredictionResult struct {
	CO2Original          float64  `json:"CO2_Original" yaml:"CO2_Original"`
	CO2AfterOptimization float64  `json:"CO2_After_Optimization" yaml:"CO2_After_Optimization"`
	CO2Predicted         float64  `json:"CO2_Predicted" yaml:"CO2_Predicted"`
	RenewableFraction    float64  `json:"Renewable_Fraction" yaml:"Renewable_Fraction"`
	EnergyEfficiency     *float64 `json:"Energy_Efficiency" yaml:"Energy_Efficiency"` // nil when no renewables
}

// PredictSingle computes the metrics for one reading.
//
// month is accepted for symmetry with the table path but does not affect the
// result: CO2Predicted is the original estimate, not a fitted value.
func PredictSingle(totalEnergy, solar, wind float64, month int) PredictionResult {
	fraction := RenewableFraction(totalEnergy, solar, wind)
	original := CO2(totalEnergy)
	afterOpt := CO2AfterOptimization(original, fraction)

	var efficiency *float64
	if e := EnergyEfficiency(totalEnergy, solar, wind); e != nil {
		v := round(*e, PredictionDecimals)
		efficiency = &v
	}

	return PredictionResult{
		CO2Original:          round(original, PredictionDecimals),
		CO2AfterOptimization: round(afterOpt, PredictionDecimals),
		CO2Predicted:         round(original, PredictionDecimals),
		RenewableFraction:    round(fraction, PredictionDecimals),
		EnergyEfficiency:     efficiency,
	}
}
