package dataset

import (
	"math/rand/v2"

	"github.com/rs/zerolog"
)

// SourceSynthetic is the LoadResult.Source value for generated data.
const SourceSynthetic = "synthetic"

// LoadResult is the outcome of a Load call.
type LoadResult struct {
	// Records holds the base monthly data. It is never empty.
	Records []Record

	// Source is the file the records came from, or SourceSynthetic.
	Source string

	// Synthetic reports whether the records were generated.
	Synthetic bool

	// Fallback holds the reason a requested source was not used, if any.
	// It is informational only; Load still returns a usable table.
	Fallback error
}

// Provider loads monthly energy records.
type Provider struct {
	logger zerolog.Logger
}

// NewProvider creates a Provider that reports fallbacks through logger.
func NewProvider(logger zerolog.Logger) *Provider {
	return &Provider{
		logger: logger.With().Str("component", "dataset").Logger(),
	}
}

// Load returns the monthly records for source.
//
// An empty source yields synthetic data drawn from rng. A non-empty source is
// parsed as a table with Month, Total_Energy, Solar and Wind columns; if it
// cannot be read or does not hold such a table, Load falls back to synthetic
// data and records the reason in LoadResult.Fallback. Load never fails.
//
// A nil rng is replaced by NewRand(DefaultSeed).
func (p *Provider) Load(source string, rng *rand.Rand) LoadResult {
	if source != "" {
		records, err := readSource(source)
		if err == nil {
			p.logger.Debug().
				Str("source", source).
				Int("rows", len(records)).
				Msg("loaded energy data from source")
			return LoadResult{Records: records, Source: source}
		}

		p.logger.Warn().
			Err(err).
			Str("source", source).
			Msg("energy data source unusable, using synthetic data")

		return LoadResult{
			Records:   Synthesize(rng),
			Source:    SourceSynthetic,
			Synthetic: true,
			Fallback:  err,
		}
	}

	return LoadResult{
		Records:   Synthesize(rng),
		Source:    SourceSynthetic,
		Synthetic: true,
	}
}
