package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalforge/analytics/models"
)

func TestRSIBounds(t *testing.T) {
	bars := generateTestBars(60, func(i int) models.Bar {
		c := 100 + float64(i%7)*3 - float64(i%3)*4
		return models.Bar{Open: c, High: c + 1, Low: c - 1, Close: c}
	})
	rsi, err := RSI(bars, 14)
	require.NoError(t, err)
	require.Len(t, rsi, len(bars))

	for i := 0; i < 14; i++ {
		assert.False(t, rsi.Defined(i))
	}
	for i := 14; i < len(bars); i++ {
		require.True(t, rsi.Defined(i))
		assert.GreaterOrEqual(t, rsi[i], 0.0)
		assert.LessOrEqual(t, rsi[i], 100.0)
	}
}

func TestRSIExtremes(t *testing.T) {
	tests := []struct {
		name   string
		close  func(i int) float64
		expect float64
	}{
		{"all gains", func(i int) float64 { return 100 + float64(i) }, 100},
		{"all losses", func(i int) float64 { return 100 - float64(i) }, 0},
		{"dead flat", func(i int) float64 { return 100 }, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bars := generateTestBars(30, func(i int) models.Bar {
				c := tt.close(i)
				return models.Bar{Open: c, High: c, Low: c, Close: c}
			})
			rsi, err := RSI(bars, 14)
			require.NoError(t, err)
			for i := 14; i < len(bars); i++ {
				assert.InDelta(t, tt.expect, rsi[i], 1e-9, "index %d", i)
			}
		})
	}
}

func TestStochasticBounds(t *testing.T) {
	bars := generateTestBars(50, func(i int) models.Bar {
		c := 100 + float64(i%11)*2
		return models.Bar{Open: c - 0.5, High: c + 2, Low: c - 2, Close: c}
	})
	k, d, err := Stochastic(bars, 14, 3, 3)
	require.NoError(t, err)
	require.Len(t, k, len(bars))
	require.Len(t, d, len(bars))

	for i := range bars {
		if k.Defined(i) {
			assert.GreaterOrEqual(t, k[i], 0.0)
			assert.LessOrEqual(t, k[i], 100.0)
		}
		if d.Defined(i) {
			assert.GreaterOrEqual(t, d[i], 0.0)
			assert.LessOrEqual(t, d[i], 100.0)
		}
	}
}

func TestStochasticFlatRangeReadsFifty(t *testing.T) {
	bars := generateTestBars(30, func(i int) models.Bar {
		return models.Bar{Open: 100, High: 100, Low: 100, Close: 100}
	})
	k, d, err := Stochastic(bars, 14, 3, 3)
	require.NoError(t, err)

	for i := range bars {
		if k.Defined(i) {
			assert.InDelta(t, 50.0, k[i], 1e-12)
		}
		if d.Defined(i) {
			assert.InDelta(t, 50.0, d[i], 1e-12)
		}
	}
	// Smoothing windows define %K from period+smoothK-2 onwards.
	assert.True(t, k.Defined(15))
	assert.True(t, d.Defined(17))
}
