package backtest

import "github.com/signalforge/analytics/models"

// Subject is one pattern or signal to evaluate: its name, implied direction
// and the sparse bar indices where it occurred.
type Subject struct {
	Name      string
	Direction models.Direction
	Indices   []int
}

// Evaluate measures, for every subject, how often the close moved in the
// subject's implied direction over the forward horizon. An occurrence at
// index i is judged against close[i+horizon]; occurrences without a full
// horizon of trailing bars are left out of both numerator and denominator.
// A subject with no evaluable occurrence is flagged InsufficientData so
// callers can tell "no evidence" from a genuine 0% rate.
func Evaluate(bars []models.Bar, subjects []Subject, horizon int) (map[string]models.BacktestResult, error) {
	if horizon <= 0 {
		return nil, &models.ConfigurationError{Param: "backtest_horizon", Reason: "horizon must be positive"}
	}

	out := make(map[string]models.BacktestResult, len(subjects))
	for _, subject := range subjects {
		result := models.BacktestResult{Subject: subject.Name}
		var successes int
		var totalChange float64

		for _, i := range subject.Indices {
			if i < 0 || i+horizon >= len(bars) {
				continue
			}
			entry := bars[i].Close
			exit := bars[i+horizon].Close
			pct := 0.0
			if entry != 0 {
				pct = (exit - entry) / entry * 100
			}

			success := false
			switch subject.Direction {
			case models.Bullish:
				success = exit > entry
			case models.Bearish:
				success = exit < entry
			}
			if success {
				successes++
			}
			totalChange += pct
			result.Details = append(result.Details, models.BacktestOccurrence{
				Index:         i,
				EntryPrice:    entry,
				ExitPrice:     exit,
				PercentChange: pct,
				Success:       success,
			})
		}

		result.OccurrenceCount = len(result.Details)
		if result.OccurrenceCount == 0 {
			result.InsufficientData = true
		} else {
			result.SuccessRate = float64(successes) / float64(result.OccurrenceCount) * 100
			result.AvgPercentChange = totalChange / float64(result.OccurrenceCount)
		}
		out[subject.Name] = result
	}
	return out, nil
}
