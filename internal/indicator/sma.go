package indicator

import (
	"math"

	"github.com/signalforge/analytics/models"
)

// SMA computes the simple moving average of closes over the given period.
// Values are undefined until a full trailing window is available.
func SMA(bars []models.Bar, period int) (models.Series, error) {
	if period <= 0 {
		return nil, &models.ConfigurationError{Param: "sma", Reason: "period must be positive"}
	}
	out := models.NewSeries(len(bars))
	var sum float64
	for i := range bars {
		sum += bars[i].Close
		if i >= period {
			sum -= bars[i-period].Close
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out, nil
}

// smaOf applies a simple moving average to an already-computed series.
// An output value is defined only when the entire trailing window is.
func smaOf(values models.Series, period int) models.Series {
	out := models.NewSeries(len(values))
	for i := period - 1; i < len(values); i++ {
		sum := 0.0
		ok := true
		for j := i - period + 1; j <= i; j++ {
			if math.IsNaN(values[j]) {
				ok = false
				break
			}
			sum += values[j]
		}
		if ok {
			out[i] = sum / float64(period)
		}
	}
	return out
}
