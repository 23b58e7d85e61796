package dataset

import "math/rand/v2"

const (
	// DefaultSeed seeds the synthetic generator when the caller does not pick one.
	DefaultSeed = 42

	// MonthsPerYear is the number of synthetic records generated.
	MonthsPerYear = 12
)

// Synthetic value ranges in kWh, lower bound inclusive, upper bound exclusive.
const (
	totalEnergyMin = 200
	totalEnergyMax = 500
	solarMin       = 50
	solarMax       = 150
	windMin        = 30
	windMax        = 100
)

// NewRand returns a deterministic generator for the given seed.
// Two generators built from the same seed yield identical synthetic tables.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Synthesize generates MonthsPerYear records with Month = 1..12.
//
// Values are drawn column by column (all Total_Energy values first, then Solar,
// then Wind) so a given seed always maps to the same table.
func Synthesize(rng *rand.Rand) []Record {
	if rng == nil {
		rng = NewRand(DefaultSeed)
	}

	totals := drawInts(rng, totalEnergyMin, totalEnergyMax)
	solar := drawInts(rng, solarMin, solarMax)
	wind := drawInts(rng, windMin, windMax)

	records := make([]Record, MonthsPerYear)
	for i := range records {
		records[i] = Record{
			Month:       i + 1,
			TotalEnergy: totals[i],
			Solar:       solar[i],
			Wind:        wind[i],
		}
	}
	return records
}

// drawInts draws MonthsPerYear integers uniformly from [lo, hi).
func drawInts(rng *rand.Rand, lo, hi int) []float64 {
	out := make([]float64, MonthsPerYear)
	for i := range out {
		out[i] = float64(lo + rng.IntN(hi-lo))
	}
	return out
}
