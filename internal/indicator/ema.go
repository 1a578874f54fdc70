package indicator

import (
	"math"

	"github.com/signalforge/analytics/models"
)

// EMA computes the exponential moving average of closes. The value at index
// period-1 is seeded with the simple average of the first window, so
// EMA(n)[n-1] == SMA(n)[n-1] exactly.
func EMA(bars []models.Bar, period int) (models.Series, error) {
	if period <= 0 {
		return nil, &models.ConfigurationError{Param: "ema", Reason: "period must be positive"}
	}
	closes := make(models.Series, len(bars))
	for i := range bars {
		closes[i] = bars[i].Close
	}
	return emaOf(closes, period), nil
}

// emaOf applies exponential smoothing to a series that may carry a NaN
// warm-up prefix, seeding with the mean of the first full defined window.
// Used directly for the MACD signal line.
func emaOf(values models.Series, period int) models.Series {
	out := models.NewSeries(len(values))
	start := values.FirstDefined()
	if start < 0 || start+period > len(values) {
		return out
	}

	var seed float64
	for i := start; i < start+period; i++ {
		if math.IsNaN(values[i]) {
			return out
		}
		seed += values[i]
	}
	seedIdx := start + period - 1
	out[seedIdx] = seed / float64(period)

	k := 2.0 / float64(period+1)
	for i := seedIdx + 1; i < len(values); i++ {
		out[i] = values[i]*k + out[i-1]*(1-k)
	}
	return out
}
