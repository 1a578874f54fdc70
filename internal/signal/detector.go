package signal

import "github.com/signalforge/analytics/models"

// Detect derives the discrete signal events from the bar series and the
// computed indicator set. Every signal the detector knows is evaluated; the
// thresholds and the SMA crossover pair come from cfg. A signal whose
// backing series is missing from the set is a configuration fault, not a
// silent skip.
func Detect(bars []models.Bar, set models.IndicatorSet, cfg models.SignalConfig) (map[models.SignalKind][]models.SignalEvent, error) {
	rsi, err := series(set, string(models.IndRSI))
	if err != nil {
		return nil, err
	}
	macdLine, err := series(set, string(models.IndMACD))
	if err != nil {
		return nil, err
	}
	macdSignal, err := series(set, string(models.IndMACDSignal))
	if err != nil {
		return nil, err
	}
	bbUpper, err := series(set, string(models.IndBBUpper))
	if err != nil {
		return nil, err
	}
	bbLower, err := series(set, string(models.IndBBLower))
	if err != nil {
		return nil, err
	}
	stochK, err := series(set, string(models.IndStochK))
	if err != nil {
		return nil, err
	}
	stochD, err := series(set, string(models.IndStochD))
	if err != nil {
		return nil, err
	}
	fastSMA, err := series(set, models.IndSMA.Key(cfg.FastSMAPeriod))
	if err != nil {
		return nil, err
	}
	slowSMA, err := series(set, models.IndSMA.Key(cfg.SlowSMAPeriod))
	if err != nil {
		return nil, err
	}

	out := make(map[models.SignalKind][]models.SignalEvent)
	add := func(kind models.SignalKind, indices []int) {
		events := make([]models.SignalEvent, 0, len(indices))
		for _, i := range indices {
			events = append(events, models.SignalEvent{Kind: kind, Index: i, Direction: kind.Direction()})
		}
		out[kind] = events
	}

	// Oscillator extremes.
	add(models.SignalRSIOversold, thresholdBelow(rsi, cfg.RSIOversold))
	add(models.SignalRSIOverbought, thresholdAbove(rsi, cfg.RSIOverbought))
	add(models.SignalStochOversold, bothBelow(stochK, stochD, cfg.StochOversold))
	add(models.SignalStochOverbought, bothAbove(stochK, stochD, cfg.StochOverbought))

	// Line crossovers.
	add(models.SignalMACDBullishCross, crossAbove(macdLine, macdSignal))
	add(models.SignalMACDBearishCross, crossBelow(macdLine, macdSignal))
	add(models.SignalGoldenCross, crossAbove(fastSMA, slowSMA))
	add(models.SignalDeathCross, crossBelow(fastSMA, slowSMA))

	// Band touches.
	add(models.SignalBBLowerTouch, bandTouchLow(bars, bbLower))
	add(models.SignalBBUpperTouch, bandTouchHigh(bars, bbUpper))

	return out, nil
}

func series(set models.IndicatorSet, key string) (models.Series, error) {
	s, ok := set[key]
	if !ok {
		return nil, &models.ConfigurationError{Param: "signals", Reason: "indicator series " + key + " not computed"}
	}
	return s, nil
}

func thresholdBelow(s models.Series, threshold float64) []int {
	var out []int
	for i := range s {
		if s.Defined(i) && s[i] < threshold {
			out = append(out, i)
		}
	}
	return out
}

func thresholdAbove(s models.Series, threshold float64) []int {
	var out []int
	for i := range s {
		if s.Defined(i) && s[i] > threshold {
			out = append(out, i)
		}
	}
	return out
}

// bothBelow requires %K and %D past the threshold together, matching the
// classic stochastic extreme reading.
func bothBelow(k, d models.Series, threshold float64) []int {
	var out []int
	for i := range k {
		if k.Defined(i) && d.Defined(i) && k[i] < threshold && d[i] < threshold {
			out = append(out, i)
		}
	}
	return out
}

func bothAbove(k, d models.Series, threshold float64) []int {
	var out []int
	for i := range k {
		if k.Defined(i) && d.Defined(i) && k[i] > threshold && d[i] > threshold {
			out = append(out, i)
		}
	}
	return out
}

func bandTouchLow(bars []models.Bar, lower models.Series) []int {
	var out []int
	for i := range bars {
		if lower.Defined(i) && bars[i].Low <= lower[i] {
			out = append(out, i)
		}
	}
	return out
}

func bandTouchHigh(bars []models.Bar, upper models.Series) []int {
	var out []int
	for i := range bars {
		if upper.Defined(i) && bars[i].High >= upper[i] {
			out = append(out, i)
		}
	}
	return out
}
