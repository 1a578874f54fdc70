package indicator

import (
	"math"

	"github.com/signalforge/analytics/models"
)

// Bollinger computes the Bollinger Bands: middle is SMA(period), the outer
// bands sit stdDev population standard deviations away. Population stddev
// (divide by n) is used so output is reproducible against the usual charting
// convention; upper >= middle >= lower at every defined index.
func Bollinger(bars []models.Bar, period int, stdDev float64) (upper, middle, lower models.Series, err error) {
	if period <= 0 {
		return nil, nil, nil, &models.ConfigurationError{Param: "bollinger", Reason: "period must be positive"}
	}
	if stdDev <= 0 {
		return nil, nil, nil, &models.ConfigurationError{Param: "bollinger", Reason: "stddev multiplier must be positive"}
	}

	middle, err = SMA(bars, period)
	if err != nil {
		return nil, nil, nil, err
	}
	upper = models.NewSeries(len(bars))
	lower = models.NewSeries(len(bars))

	for i := period - 1; i < len(bars); i++ {
		mean := middle[i]
		var variance float64
		for j := i - period + 1; j <= i; j++ {
			d := bars[j].Close - mean
			variance += d * d
		}
		sd := math.Sqrt(variance / float64(period))
		upper[i] = mean + sd*stdDev
		lower[i] = mean - sd*stdDev
	}
	return upper, middle, lower, nil
}
