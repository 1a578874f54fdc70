package indicator

import "github.com/signalforge/analytics/models"

// Compute runs the full requested indicator battery over the bar series and
// returns the resulting set keyed by indicator name (sma_20, rsi, macd, ...).
// Every series is aligned index-for-index with the input bars. Fewer than
// two bars yields fully undefined series rather than an error; invalid
// periods are rejected before any computation.
func Compute(bars []models.Bar, cfg models.IndicatorConfig) (models.IndicatorSet, error) {
	set := make(models.IndicatorSet)

	// Too little history for any indicator to mean anything. Emit the
	// requested keys as all-undefined so callers keep their alignment.
	if len(bars) < 2 {
		if err := computeInto(nil, cfg, set); err != nil {
			return nil, err
		}
		for key := range set {
			set[key] = models.NewSeries(len(bars))
		}
		return set, nil
	}

	if err := computeInto(bars, cfg, set); err != nil {
		return nil, err
	}
	return set, nil
}

func computeInto(bars []models.Bar, cfg models.IndicatorConfig, set models.IndicatorSet) error {
	for _, period := range cfg.SMAPeriods {
		s, err := SMA(bars, period)
		if err != nil {
			return err
		}
		set[models.IndSMA.Key(period)] = s
	}
	for _, period := range cfg.EMAPeriods {
		s, err := EMA(bars, period)
		if err != nil {
			return err
		}
		set[models.IndEMA.Key(period)] = s
	}

	rsi, err := RSI(bars, cfg.RSIPeriod)
	if err != nil {
		return err
	}
	set[string(models.IndRSI)] = rsi

	line, signalLine, hist, err := MACD(bars, cfg.MACDFast, cfg.MACDSlow, cfg.MACDSignal)
	if err != nil {
		return err
	}
	set[string(models.IndMACD)] = line
	set[string(models.IndMACDSignal)] = signalLine
	set[string(models.IndMACDHist)] = hist

	upper, middle, lower, err := Bollinger(bars, cfg.BBPeriod, cfg.BBStdDev)
	if err != nil {
		return err
	}
	set[string(models.IndBBUpper)] = upper
	set[string(models.IndBBMiddle)] = middle
	set[string(models.IndBBLower)] = lower

	k, d, err := Stochastic(bars, cfg.StochPeriod, cfg.StochSmoothK, cfg.StochSmoothD)
	if err != nil {
		return err
	}
	set[string(models.IndStochK)] = k
	set[string(models.IndStochD)] = d

	adx, plusDI, minusDI, err := ADX(bars, cfg.ADXPeriod)
	if err != nil {
		return err
	}
	set[string(models.IndADX)] = adx
	set[string(models.IndPlusDI)] = plusDI
	set[string(models.IndMinusDI)] = minusDI

	atr, err := ATR(bars, cfg.ATRPeriod)
	if err != nil {
		return err
	}
	set[string(models.IndATR)] = atr

	set[string(models.IndOBV)] = OBV(bars)
	return nil
}
