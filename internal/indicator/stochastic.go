package indicator

import "github.com/signalforge/analytics/models"

// Stochastic computes the slow stochastic oscillator. Raw %K is the position
// of the close within the trailing high-low range, defined from index
// period-1; a flat range reads 50. %K is raw %K smoothed by SMA(smoothK) and
// %D is %K smoothed by SMA(smoothD). Both stay within [0,100].
func Stochastic(bars []models.Bar, period, smoothK, smoothD int) (k, d models.Series, err error) {
	if period <= 0 || smoothK <= 0 || smoothD <= 0 {
		return nil, nil, &models.ConfigurationError{Param: "stochastic", Reason: "periods must be positive"}
	}

	raw := models.NewSeries(len(bars))
	for i := period - 1; i < len(bars); i++ {
		highest := bars[i-period+1].High
		lowest := bars[i-period+1].Low
		for j := i - period + 2; j <= i; j++ {
			if bars[j].High > highest {
				highest = bars[j].High
			}
			if bars[j].Low < lowest {
				lowest = bars[j].Low
			}
		}
		if highest == lowest {
			raw[i] = 50.0
			continue
		}
		raw[i] = clamp((bars[i].Close-lowest)/(highest-lowest)*100, 0, 100)
	}

	k = smaOf(raw, smoothK)
	d = smaOf(k, smoothD)
	return k, d, nil
}
