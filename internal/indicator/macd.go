package indicator

import (
	"math"

	"github.com/signalforge/analytics/models"
)

// MACD computes the MACD line (fast EMA minus slow EMA), its signal line
// (EMA of the MACD line) and the histogram (line minus signal). The
// histogram equals line-signal exactly at every defined index.
func MACD(bars []models.Bar, fast, slow, signal int) (line, signalLine, hist models.Series, err error) {
	if fast <= 0 || slow <= 0 || signal <= 0 {
		return nil, nil, nil, &models.ConfigurationError{Param: "macd", Reason: "periods must be positive"}
	}
	if fast >= slow {
		return nil, nil, nil, &models.ConfigurationError{Param: "macd", Reason: "fast period must be below slow period"}
	}

	emaFast, err := EMA(bars, fast)
	if err != nil {
		return nil, nil, nil, err
	}
	emaSlow, err := EMA(bars, slow)
	if err != nil {
		return nil, nil, nil, err
	}

	line = models.NewSeries(len(bars))
	for i := range line {
		// NaN minus anything stays NaN, which is exactly the warm-up we want.
		line[i] = emaFast[i] - emaSlow[i]
	}

	signalLine = emaOf(line, signal)

	hist = models.NewSeries(len(bars))
	for i := range hist {
		if !math.IsNaN(line[i]) && !math.IsNaN(signalLine[i]) {
			hist[i] = line[i] - signalLine[i]
		}
	}
	return line, signalLine, hist, nil
}
