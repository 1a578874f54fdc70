package indicator

import "github.com/signalforge/analytics/models"

// OBV computes on-balance volume: a running total that adds the bar's volume
// when the close rises and subtracts it when the close falls.
func OBV(bars []models.Bar) models.Series {
	out := models.NewSeries(len(bars))
	if len(bars) == 0 {
		return out
	}
	out[0] = bars[0].Volume
	for i := 1; i < len(bars); i++ {
		switch {
		case bars[i].Close > bars[i-1].Close:
			out[i] = out[i-1] + bars[i].Volume
		case bars[i].Close < bars[i-1].Close:
			out[i] = out[i-1] - bars[i].Volume
		default:
			out[i] = out[i-1]
		}
	}
	return out
}
