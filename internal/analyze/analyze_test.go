package analyze

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalforge/analytics/models"
)

func generateTestBars(n int) []models.Bar {
	bars := make([]models.Bar, n)
	for i := range bars {
		c := 100 + float64(i%7)*2 - float64(i%3)
		bars[i] = models.Bar{
			Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour),
			Open:      c - 0.5,
			High:      c + 1.5,
			Low:       c - 1.5,
			Close:     c,
			Volume:    1000 + float64(i),
		}
	}
	return bars
}

func TestAnalyzeBundleShape(t *testing.T) {
	bars := generateTestBars(60)
	cfg := models.DefaultAnalysisConfig()

	bundle, err := Analyze(bars, cfg)
	require.NoError(t, err)

	// Every dense axis aligns with the bar count.
	assert.Len(t, bundle.Datetime, 60)
	assert.Equal(t, "2024-01-01 00:00:00", bundle.Datetime[0])
	assert.Len(t, bundle.Price.Close, 60)
	assert.Len(t, bundle.Price.Volume, 60)
	for key, s := range bundle.Indicators {
		assert.Len(t, s, 60, "indicator %s", key)
	}
	for name, dense := range bundle.Patterns.Bullish {
		assert.Len(t, dense, 60, "bullish pattern %s", name)
	}
	for name, dense := range bundle.Patterns.Bearish {
		assert.Len(t, dense, 60, "bearish pattern %s", name)
	}
	for name, dense := range bundle.Signals {
		assert.Len(t, dense, 60, "signal %s", name)
	}

	// Full battery: 12 patterns split by direction, 10 signals, and one
	// backtest entry per pattern and signal.
	assert.Len(t, bundle.Patterns.Bullish, 6)
	assert.Len(t, bundle.Patterns.Bearish, 6)
	assert.Len(t, bundle.Signals, 10)
	assert.Len(t, bundle.Backtests, 22)
}

func TestAnalyzeDeterministic(t *testing.T) {
	bars := generateTestBars(60)
	cfg := models.DefaultAnalysisConfig()

	first, err := Analyze(bars, cfg)
	require.NoError(t, err)
	second, err := Analyze(bars, cfg)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b, "identical input and config must serialize identically")
}

func TestAnalyzeAddsCrossoverPair(t *testing.T) {
	bars := generateTestBars(60)
	cfg := models.DefaultAnalysisConfig()
	cfg.Indicators.SMAPeriods = []int{20} // crossover pair not listed
	cfg.Signals.FastSMAPeriod = 5
	cfg.Signals.SlowSMAPeriod = 20

	bundle, err := Analyze(bars, cfg)
	require.NoError(t, err)

	_, ok := bundle.Indicators["sma_5"]
	assert.True(t, ok, "fast crossover average must be computed")
	_, ok = bundle.Indicators["sma_20"]
	assert.True(t, ok)
}

func TestAnalyzeEmptyInput(t *testing.T) {
	_, err := Analyze(nil, models.DefaultAnalysisConfig())
	var insufficientErr *models.InsufficientDataError
	require.ErrorAs(t, err, &insufficientErr)
}

func TestAnalyzeInvalidConfig(t *testing.T) {
	cfg := models.DefaultAnalysisConfig()
	cfg.Indicators.MACDFast = 26
	cfg.Indicators.MACDSlow = 12

	_, err := Analyze(generateTestBars(60), cfg)
	var cfgErr *models.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestAnalyzeTinySeriesStaysQuiet(t *testing.T) {
	bundle, err := Analyze(generateTestBars(1), models.DefaultAnalysisConfig())
	require.NoError(t, err)

	for key, s := range bundle.Indicators {
		assert.False(t, s.Defined(0), "indicator %s on one bar", key)
	}
	for _, dense := range bundle.Patterns.Bullish {
		assert.Equal(t, []int{0}, dense)
	}
	for _, dense := range bundle.Signals {
		assert.Equal(t, []int{0}, dense)
	}
	for _, result := range bundle.Backtests {
		assert.True(t, result.InsufficientData)
	}
}

func TestAnalyzeSerializesUndefinedAsNull(t *testing.T) {
	bundle, err := Analyze(generateTestBars(5), models.DefaultAnalysisConfig())
	require.NoError(t, err)

	raw, err := json.Marshal(bundle)
	require.NoError(t, err)

	var decoded struct {
		Indicators map[string][]*float64 `json:"indicators"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Contains(t, decoded.Indicators, "rsi")
	for i, v := range decoded.Indicators["rsi"] {
		assert.Nil(t, v, "rsi warm-up index %d must be null", i)
	}
}
