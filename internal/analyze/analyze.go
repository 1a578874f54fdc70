package analyze

import (
	"github.com/signalforge/analytics/internal/backtest"
	"github.com/signalforge/analytics/internal/indicator"
	"github.com/signalforge/analytics/internal/pattern"
	"github.com/signalforge/analytics/internal/signal"
	"github.com/signalforge/analytics/models"
)

// Analyze runs the full pipeline over the bar series: indicators, then
// candlestick patterns and indicator signals, then the forward-horizon
// backtest, and assembles everything into one immutable bundle. The bundle
// is built fresh on every call; nothing is shared between invocations, so
// concurrent per-symbol calls need no coordination.
func Analyze(bars []models.Bar, cfg models.AnalysisConfig) (*models.ChartData, error) {
	if len(bars) == 0 {
		return nil, &models.InsufficientDataError{Have: 0, Need: 1}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// The crossover pair must be part of the computed battery.
	indCfg := cfg.Indicators
	indCfg.SMAPeriods = withPeriods(indCfg.SMAPeriods, cfg.Signals.FastSMAPeriod, cfg.Signals.SlowSMAPeriod)

	indicators, err := indicator.Compute(bars, indCfg)
	if err != nil {
		return nil, err
	}

	patterns, err := pattern.Detect(bars, cfg.Patterns)
	if err != nil {
		return nil, err
	}

	signals, err := signal.Detect(bars, indicators, cfg.Signals)
	if err != nil {
		return nil, err
	}

	backtests, err := backtest.Evaluate(bars, collectSubjects(patterns, signals), cfg.BacktestHorizon)
	if err != nil {
		return nil, err
	}

	bundle := &models.ChartData{
		Datetime:   make([]string, len(bars)),
		Price:      newPriceData(bars),
		Indicators: indicators,
		Patterns: models.PatternMatrix{
			Bullish: make(map[string][]int),
			Bearish: make(map[string][]int),
		},
		Signals:   make(map[string][]int),
		Backtests: backtests,
	}
	for i, b := range bars {
		bundle.Datetime[i] = b.Timestamp.Format(models.DatetimeLayout)
	}

	for kind, occurrences := range patterns[models.Bullish] {
		bundle.Patterns.Bullish[string(kind)] = densifyPatterns(occurrences, len(bars))
	}
	for kind, occurrences := range patterns[models.Bearish] {
		bundle.Patterns.Bearish[string(kind)] = densifyPatterns(occurrences, len(bars))
	}
	for kind, events := range signals {
		bundle.Signals[string(kind)] = densifySignals(events, len(bars))
	}
	return bundle, nil
}

func newPriceData(bars []models.Bar) models.PriceData {
	p := models.PriceData{
		Open:   make([]float64, len(bars)),
		High:   make([]float64, len(bars)),
		Low:    make([]float64, len(bars)),
		Close:  make([]float64, len(bars)),
		Volume: make([]float64, len(bars)),
	}
	for i, b := range bars {
		p.Open[i] = b.Open
		p.High[i] = b.High
		p.Low[i] = b.Low
		p.Close[i] = b.Close
		p.Volume[i] = b.Volume
	}
	return p
}

// densifyPatterns converts a sparse occurrence list into a 0/1 array
// aligned with the datetime axis, the shape external renderers consume.
func densifyPatterns(occurrences []models.PatternOccurrence, n int) []int {
	dense := make([]int, n)
	for _, o := range occurrences {
		if o.Index >= 0 && o.Index < n {
			dense[o.Index] = 1
		}
	}
	return dense
}

func densifySignals(events []models.SignalEvent, n int) []int {
	dense := make([]int, n)
	for _, e := range events {
		if e.Index >= 0 && e.Index < n {
			dense[e.Index] = 1
		}
	}
	return dense
}

// collectSubjects flattens pattern occurrences and signal events into
// backtest subjects keyed by their serialized name.
func collectSubjects(
	patterns map[models.Direction]map[models.PatternKind][]models.PatternOccurrence,
	signals map[models.SignalKind][]models.SignalEvent,
) []backtest.Subject {
	var subjects []backtest.Subject
	for _, dir := range []models.Direction{models.Bullish, models.Bearish} {
		for kind, occurrences := range patterns[dir] {
			indices := make([]int, 0, len(occurrences))
			for _, o := range occurrences {
				indices = append(indices, o.Index)
			}
			subjects = append(subjects, backtest.Subject{
				Name:      string(kind),
				Direction: dir,
				Indices:   indices,
			})
		}
	}
	for kind, events := range signals {
		indices := make([]int, 0, len(events))
		for _, e := range events {
			indices = append(indices, e.Index)
		}
		subjects = append(subjects, backtest.Subject{
			Name:      string(kind),
			Direction: kind.Direction(),
			Indices:   indices,
		})
	}
	return subjects
}

func withPeriods(periods []int, extra ...int) []int {
	out := append([]int(nil), periods...)
	for _, p := range extra {
		found := false
		for _, existing := range out {
			if existing == p {
				found = true
				break
			}
		}
		if !found {
			out = append(out, p)
		}
	}
	return out
}
