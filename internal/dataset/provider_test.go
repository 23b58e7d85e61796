package dataset

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_Load_NoSource(t *testing.T) {
	p := NewProvider(zerolog.Nop())

	first := p.Load("", NewRand(DefaultSeed))
	second := p.Load("", NewRand(DefaultSeed))

	assert.True(t, first.Synthetic)
	assert.Equal(t, SourceSynthetic, first.Source)
	assert.NoError(t, first.Fallback)
	assert.Equal(t, first.Records, second.Records, "same seed must give the same table")

	months := make([]int, 0, len(first.Records))
	for _, r := range first.Records {
		months = append(months, r.Month)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, months)
}

func TestProvider_Load_SharedRandDiffers(t *testing.T) {
	p := NewProvider(zerolog.Nop())
	rng := NewRand(DefaultSeed)

	first := p.Load("", rng)
	second := p.Load("", rng)

	require.Len(t, second.Records, MonthsPerYear)
	assert.NotEqual(t, first.Records, second.Records, "a shared generator keeps advancing")
}

func TestProvider_Load_FromFile(t *testing.T) {
	path := writeFile(t, "energy.csv", "Month,Total_Energy,Solar,Wind\n1,300,100,50\n2,200,20,30\n")
	p := NewProvider(zerolog.Nop())

	res := p.Load(path, nil)

	assert.False(t, res.Synthetic)
	assert.Equal(t, path, res.Source)
	assert.NoError(t, res.Fallback)
	assert.Len(t, res.Records, 2)
}

func TestProvider_Load_FallbackMatchesSyntheticShape(t *testing.T) {
	malformed := writeFile(t, "bad.csv", "not,a,table\n\x00\x01")
	missing := filepath.Join(t.TempDir(), "missing.csv")

	var buf bytes.Buffer
	p := NewProvider(zerolog.New(&buf))
	baseline := p.Load("", NewRand(DefaultSeed))

	for _, src := range []string{malformed, missing} {
		res := p.Load(src, NewRand(DefaultSeed))

		assert.True(t, res.Synthetic, src)
		assert.Equal(t, SourceSynthetic, res.Source)
		assert.Error(t, res.Fallback)
		require.Len(t, res.Records, MonthsPerYear)
		// Same seed, so the fallback table is the baseline table.
		assert.Equal(t, baseline.Records, res.Records)
	}

	assert.ErrorIs(t, p.Load(missing, nil).Fallback, ErrSourceUnreadable)
	assert.Contains(t, buf.String(), "using synthetic data")
}
