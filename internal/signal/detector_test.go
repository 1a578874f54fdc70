package signal

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalforge/analytics/internal/indicator"
	"github.com/signalforge/analytics/models"
)

func barsFromCloses(closes ...float64) []models.Bar {
	bars := make([]models.Bar, len(closes))
	for i, c := range closes {
		bars[i] = models.Bar{
			Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour),
			Open:      c,
			High:      c + 0.5,
			Low:       c - 0.5,
			Close:     c,
			Volume:    1000,
		}
	}
	return bars
}

func TestGoldenCrossOnSteadyRise(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	bars := barsFromCloses(closes...)

	indCfg := models.DefaultAnalysisConfig().Indicators
	indCfg.SMAPeriods = []int{5, 20}
	set, err := indicator.Compute(bars, indCfg)
	require.NoError(t, err)

	sigCfg := models.DefaultAnalysisConfig().Signals
	sigCfg.FastSMAPeriod = 5
	sigCfg.SlowSMAPeriod = 20

	events, err := Detect(bars, set, sigCfg)
	require.NoError(t, err)

	// The fast average is already above the slow one the moment both are
	// defined, so the cross registers once, at the slow warm-up boundary.
	golden := events[models.SignalGoldenCross]
	require.Len(t, golden, 1)
	assert.Equal(t, 19, golden[0].Index)
	assert.Equal(t, models.Bullish, golden[0].Direction)
	assert.Empty(t, events[models.SignalDeathCross])

	// Same emergence logic for MACD: the line leads its own signal EMA on
	// a monotonic rise, and neither ever gives the lead back.
	macdBull := events[models.SignalMACDBullishCross]
	require.Len(t, macdBull, 1)
	assert.Equal(t, 33, macdBull[0].Index)
	assert.Empty(t, events[models.SignalMACDBearishCross])

	assert.NotEmpty(t, events[models.SignalRSIOverbought])
	assert.Empty(t, events[models.SignalRSIOversold])
}

func TestRSIOversoldAfterCrash(t *testing.T) {
	closes := make([]float64, 0, 30)
	for i := 0; i < 20; i++ {
		closes = append(closes, 100+float64(i%2))
	}
	for i := 0; i < 10; i++ {
		closes = append(closes, closes[len(closes)-1]-5)
	}
	bars := barsFromCloses(closes...)

	set, err := indicator.Compute(bars, models.DefaultAnalysisConfig().Indicators)
	require.NoError(t, err)

	events, err := Detect(bars, set, models.DefaultAnalysisConfig().Signals)
	require.NoError(t, err)

	assert.NotEmpty(t, events[models.SignalRSIOversold])
	assert.Empty(t, events[models.SignalRSIOverbought])
}

func TestQuietMarketKeepsOscillatorsCentered(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100
	}
	bars := barsFromCloses(closes...)

	set, err := indicator.Compute(bars, models.DefaultAnalysisConfig().Indicators)
	require.NoError(t, err)

	events, err := Detect(bars, set, models.DefaultAnalysisConfig().Signals)
	require.NoError(t, err)

	assert.Empty(t, events[models.SignalRSIOversold])
	assert.Empty(t, events[models.SignalRSIOverbought])
	assert.Empty(t, events[models.SignalStochOversold])
	assert.Empty(t, events[models.SignalStochOverbought])
	assert.Empty(t, events[models.SignalGoldenCross])
	assert.Empty(t, events[models.SignalDeathCross])
}

func TestDetectMissingSeries(t *testing.T) {
	bars := barsFromCloses(100, 101, 102)
	set, err := indicator.Compute(bars, models.DefaultAnalysisConfig().Indicators)
	require.NoError(t, err)
	delete(set, string(models.IndRSI))

	_, err = Detect(bars, set, models.DefaultAnalysisConfig().Signals)
	var cfgErr *models.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestCrossingsEmergenceAndRegular(t *testing.T) {
	nan := math.NaN()

	// Fast emerges above slow at index 2: counts as the initial cross.
	fast := models.Series{nan, nan, 5, 6}
	slow := models.Series{1, 2, 3, 4}
	assert.Equal(t, []int{2}, crossAbove(fast, slow))
	assert.Empty(t, crossBelow(fast, slow))

	// Regular cross: both defined throughout, fast overtakes at index 2.
	fast = models.Series{1, 2, 3, 4}
	slow = models.Series{2.5, 2.5, 2.5, 2.5}
	assert.Equal(t, []int{2}, crossAbove(fast, slow))

	// Mirror case going down.
	fast = models.Series{4, 3, 2, 1}
	slow = models.Series{2.5, 2.5, 2.5, 2.5}
	assert.Equal(t, []int{2}, crossBelow(fast, slow))
}

func TestBandTouches(t *testing.T) {
	bars := barsFromCloses(100, 100, 100, 100)
	bars[1].Low = 90   // pierces the lower band
	bars[3].High = 110 // pierces the upper band

	lower := models.Series{95, 95, 95, 95}
	upper := models.Series{105, 105, 105, 105}

	assert.Equal(t, []int{1}, bandTouchLow(bars, lower))
	assert.Equal(t, []int{3}, bandTouchHigh(bars, upper))
}
