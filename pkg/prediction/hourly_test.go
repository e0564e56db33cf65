package prediction_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/amirasaad/fxcli/pkg/money"
	"github.com/amirasaad/fxcli/pkg/prediction"
	"github.com/amirasaad/fxcli/pkg/rates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourly_Deterministic(t *testing.T) {
	src := &sequenceSource{floats: []float64{0.75, 0.25, 0.5}}
	g := prediction.New(prediction.WithSource(src), prediction.WithClock(clockAt(22)))

	steps, err := g.Hourly(rates.Default(), money.USD, money.EUR, 3)
	require.NoError(t, err)
	require.Len(t, steps, 3)

	// noise: +0.01, -0.01, 0; variation: 0.01, -0.007, -0.0021
	assert.Equal(t, "22:00", steps[0].Hour)
	assert.InDelta(t, 0.9292, steps[0].Rate, 1e-9)
	assert.InDelta(t, 1.0, steps[0].Change, 1e-9)
	assert.Equal(t, prediction.Up, steps[0].Trend)

	assert.Equal(t, "23:00", steps[1].Hour)
	assert.InDelta(t, 0.9136, steps[1].Rate, 1e-9)
	assert.InDelta(t, -0.7, steps[1].Change, 1e-9)
	assert.Equal(t, prediction.Down, steps[1].Trend)

	assert.Equal(t, "00:00", steps[2].Hour)
	assert.InDelta(t, 0.9181, steps[2].Rate, 1e-9)
	assert.InDelta(t, -0.21, steps[2].Change, 1e-9)
	assert.Equal(t, prediction.Down, steps[2].Trend)
}

func TestHourly_Lengths(t *testing.T) {
	g := prediction.New(prediction.WithClock(clockAt(9)))
	for _, hours := range prediction.HourOptions {
		steps, err := g.Hourly(rates.Default(), money.CHF, money.BAM, hours)
		require.NoError(t, err)
		assert.Len(t, steps, hours)
		assert.Equal(t, "09:00", steps[0].Hour)
	}
}

func TestHourly_InvalidHours(t *testing.T) {
	g := prediction.New()
	for _, hours := range []int{-1, 0, 2, 4, 5, 7, 24} {
		_, err := g.Hourly(rates.Default(), money.USD, money.EUR, hours)
		assert.ErrorIs(t, err, prediction.ErrInvalidHours, hours)
	}
}

func TestHourly_UnknownPair(t *testing.T) {
	_, err := prediction.New().Hourly(rates.Default(), money.USD, money.USD, 1)
	assert.ErrorIs(t, err, rates.ErrUnknownPair)
}

func TestHourly_BoundedAndConsistent(t *testing.T) {
	g := prediction.New(prediction.WithSource(rand.New(rand.NewPCG(3, 5))))
	bound := prediction.Volatility / (1 - prediction.Smoothing)
	base := rates.Default()[money.EUR][money.AUD]

	for range 500 {
		steps, err := g.Hourly(rates.Default(), money.EUR, money.AUD, 6)
		require.NoError(t, err)
		for _, s := range steps {
			assert.LessOrEqual(t, math.Abs(s.Variation), bound)
			assert.Equal(t, prediction.TrendOf(s.Variation), s.Trend)
			assert.InDelta(t, base, s.Rate, base*bound+0.00005)
			if s.Change != 0 {
				assert.Equal(t, s.Change > 0, s.Trend == prediction.Up)
			}
		}
	}
}

func TestValidHours(t *testing.T) {
	assert.True(t, prediction.ValidHours(1))
	assert.True(t, prediction.ValidHours(3))
	assert.True(t, prediction.ValidHours(6))
	assert.False(t, prediction.ValidHours(2))
	assert.False(t, prediction.ValidHours(0))
}

func TestTrend(t *testing.T) {
	assert.Equal(t, prediction.Up, prediction.TrendOf(0.0001))
	assert.Equal(t, prediction.Down, prediction.TrendOf(0))
	assert.Equal(t, prediction.Down, prediction.TrendOf(-0.01))
	assert.Equal(t, "↑", prediction.Up.String())
	assert.Equal(t, "↓", prediction.Down.String())
}
