package pattern

import "github.com/signalforge/analytics/models"

// Detect scans the bar series for the requested candlestick formations and
// returns sparse occurrence lists grouped by direction and pattern kind.
// An empty kinds slice enables the full battery. Patterns are not mutually
// exclusive: several may fire at the same index. Detection is deterministic
// and never fails on short input; only an unknown kind is an error.
func Detect(bars []models.Bar, kinds []models.PatternKind) (map[models.Direction]map[models.PatternKind][]models.PatternOccurrence, error) {
	if len(kinds) == 0 {
		kinds = models.AllPatternKinds()
	}

	out := map[models.Direction]map[models.PatternKind][]models.PatternOccurrence{
		models.Bullish: {},
		models.Bearish: {},
	}

	for _, kind := range kinds {
		pred, ok := predicates[kind]
		if !ok {
			return nil, &models.ConfigurationError{Param: "patterns", Reason: "unknown pattern " + string(kind)}
		}
		dir := kind.Direction()
		occurrences := []models.PatternOccurrence{}
		for i := range bars {
			if !pred(bars, i) {
				continue
			}
			occurrences = append(occurrences, models.PatternOccurrence{
				Kind:      kind,
				Index:     i,
				Direction: dir,
				Strength:  label(strengthScore(kind, bars, i)),
			})
		}
		out[dir][kind] = occurrences
	}
	return out, nil
}
