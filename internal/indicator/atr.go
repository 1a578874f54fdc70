package indicator

import (
	"math"

	"github.com/signalforge/analytics/models"
)

// TrueRange returns the true range of bar i against the previous close:
// the greatest of high-low, |high-prevClose| and |low-prevClose|.
func TrueRange(cur, prev models.Bar) float64 {
	highLow := cur.High - cur.Low
	highClose := math.Abs(cur.High - prev.Close)
	lowClose := math.Abs(cur.Low - prev.Close)
	return math.Max(highLow, math.Max(highClose, lowClose))
}

// ATR computes the Wilder-smoothed average true range. The first value
// appears at index period as the simple mean of the first period true
// ranges; afterwards ATR[i] = (ATR[i-1]*(period-1) + TR[i]) / period.
func ATR(bars []models.Bar, period int) (models.Series, error) {
	if period <= 0 {
		return nil, &models.ConfigurationError{Param: "atr", Reason: "period must be positive"}
	}
	out := models.NewSeries(len(bars))
	if len(bars) <= period {
		return out, nil
	}

	var sum float64
	for i := 1; i <= period; i++ {
		sum += TrueRange(bars[i], bars[i-1])
	}
	out[period] = sum / float64(period)

	for i := period + 1; i < len(bars); i++ {
		tr := TrueRange(bars[i], bars[i-1])
		out[i] = (out[i-1]*float64(period-1) + tr) / float64(period)
	}
	return out, nil
}
