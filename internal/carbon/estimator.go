package carbon

import "gonum.org/v1/gonum/floats/scalar"

// RenewableFraction returns the share of total energy supplied by solar and
// wind: (solar+wind)/total. It returns 0 when total is not positive. The result
// is not clamped and exceeds 1 when renewables exceed the total.
func RenewableFraction(total, solar, wind float64) float64 {
	if total > 0 {
		return (solar + wind) / total
	}
	return 0
}

// EnergyEfficiency returns total/(solar+wind), or nil when the renewable sum
// is not positive. nil is the "not available" value.
func EnergyEfficiency(total, solar, wind float64) *float64 {
	renewable := solar + wind
	if renewable > 0 {
		v := total / renewable
		return &v
	}
	return nil
}

// CO2 returns the emission estimate for total energy: total × EmissionFactor.
func CO2(total float64) float64 {
	return total * EmissionFactor
}

// CO2AfterOptimization returns the estimate left after the renewable share is
// assumed to offset emissions: co2 × (1 − fraction).
func CO2AfterOptimization(co2, fraction float64) float64 {
	return co2 * (1 - fraction)
}

// round rounds v half away from zero to the given number of decimals.
func round(v float64, decimals int) float64 {
	return scalar.Round(v, decimals)
}
