package signal

import "github.com/signalforge/analytics/models"

// crossAbove returns the indices where fast transitions from at-or-below to
// above slow. Both series must be defined at i-1 and i for a regular cross.
// The first index where both series become defined is treated as a cross
// when fast emerges already on the far side: the warm-up boundary counts as
// the <= state, so a fast average that overtakes the slow one the moment the
// comparison becomes possible still registers.
func crossAbove(fast, slow models.Series) []int {
	return crossings(fast, slow, func(a, b float64) bool { return a > b })
}

// crossBelow is the mirror of crossAbove.
func crossBelow(fast, slow models.Series) []int {
	return crossings(fast, slow, func(a, b float64) bool { return a < b })
}

func crossings(fast, slow models.Series, beyond func(a, b float64) bool) []int {
	var out []int
	n := len(fast)
	if len(slow) < n {
		n = len(slow)
	}
	seen := false
	for i := 0; i < n; i++ {
		if !fast.Defined(i) || !slow.Defined(i) {
			continue
		}
		if !seen {
			// First comparable index: emergence beyond the other side
			// counts as the initial cross.
			seen = true
			if beyond(fast[i], slow[i]) {
				out = append(out, i)
			}
			continue
		}
		if !fast.Defined(i-1) || !slow.Defined(i-1) {
			continue
		}
		if !beyond(fast[i-1], slow[i-1]) && beyond(fast[i], slow[i]) {
			out = append(out, i)
		}
	}
	return out
}
