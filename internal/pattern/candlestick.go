package pattern

import "github.com/signalforge/analytics/models"

// Each predicate is a pure geometric test over a fixed trailing window of
// 1-3 bars, evaluated at index i. A window that reaches before the start of
// the series simply fails the predicate; that is warm-up, not an error.

// isBullishEngulfing: previous candle bearish, current bullish with a body
// that fully contains the previous body.
func isBullishEngulfing(bars []models.Bar, i int) bool {
	if i < 1 {
		return false
	}
	prev, cur := bars[i-1], bars[i]
	return prev.IsBearish() && cur.IsBullish() &&
		cur.Open < prev.Close && cur.Close > prev.Open
}

// isBearishEngulfing: mirror of the bullish case.
func isBearishEngulfing(bars []models.Bar, i int) bool {
	if i < 1 {
		return false
	}
	prev, cur := bars[i-1], bars[i]
	return prev.IsBullish() && cur.IsBearish() &&
		cur.Open > prev.Close && cur.Close < prev.Open
}

// isHammer: small body near the top of the range with a lower shadow at
// least twice the body, appearing after a down candle.
func isHammer(bars []models.Bar, i int) bool {
	if i < 1 {
		return false
	}
	cur := bars[i]
	body := cur.Body()
	return body > 0 && bars[i-1].IsBearish() &&
		cur.LowerShadow() >= 2*body && cur.UpperShadow() <= 0.5*body
}

// isHangingMan: hammer geometry appearing after an up candle.
func isHangingMan(bars []models.Bar, i int) bool {
	if i < 1 {
		return false
	}
	cur := bars[i]
	body := cur.Body()
	return body > 0 && bars[i-1].IsBullish() &&
		cur.LowerShadow() >= 2*body && cur.UpperShadow() <= 0.5*body
}

// isShootingStar: long upper shadow, small body near the low, after an up
// candle.
func isShootingStar(bars []models.Bar, i int) bool {
	if i < 1 {
		return false
	}
	cur := bars[i]
	body := cur.Body()
	return body > 0 && bars[i-1].IsBullish() &&
		cur.UpperShadow() >= 2*body && cur.LowerShadow() <= 0.5*body
}

// isDojiStar: a doji body gapping below a solid bearish candle.
func isDojiStar(bars []models.Bar, i int) bool {
	if i < 1 {
		return false
	}
	prev, cur := bars[i-1], bars[i]
	rng := cur.Range()
	if rng <= 0 || !prev.IsBearish() {
		return false
	}
	isDoji := cur.Body() <= 0.1*rng
	gapDown := maxF(cur.Open, cur.Close) < prev.Close
	return isDoji && gapDown
}

// isMorningStar: large bearish candle, small-bodied candle gapping below it,
// then a bullish candle closing above the midpoint of the first body.
func isMorningStar(bars []models.Bar, i int) bool {
	if i < 2 {
		return false
	}
	first, star, last := bars[i-2], bars[i-1], bars[i]
	if !first.IsBearish() || !last.IsBullish() || first.Body() == 0 {
		return false
	}
	smallStar := star.Body() < 0.3*first.Body()
	gapDown := maxF(star.Open, star.Close) < first.Close
	midpoint := (first.Open + first.Close) / 2
	return smallStar && gapDown && last.Close > midpoint
}

// isEveningStar: mirror of the morning star.
func isEveningStar(bars []models.Bar, i int) bool {
	if i < 2 {
		return false
	}
	first, star, last := bars[i-2], bars[i-1], bars[i]
	if !first.IsBullish() || !last.IsBearish() || first.Body() == 0 {
		return false
	}
	smallStar := star.Body() < 0.3*first.Body()
	gapUp := minF(star.Open, star.Close) > first.Close
	midpoint := (first.Open + first.Close) / 2
	return smallStar && gapUp && last.Close < midpoint
}

// isThreeWhiteSoldiers: three consecutive bullish candles with rising closes.
func isThreeWhiteSoldiers(bars []models.Bar, i int) bool {
	if i < 2 {
		return false
	}
	a, b, c := bars[i-2], bars[i-1], bars[i]
	return a.IsBullish() && b.IsBullish() && c.IsBullish() &&
		b.Close > a.Close && c.Close > b.Close
}

// isThreeBlackCrows: three consecutive bearish candles with falling closes.
func isThreeBlackCrows(bars []models.Bar, i int) bool {
	if i < 2 {
		return false
	}
	a, b, c := bars[i-2], bars[i-1], bars[i]
	return a.IsBearish() && b.IsBearish() && c.IsBearish() &&
		b.Close < a.Close && c.Close < b.Close
}

// isPiercing: bullish candle opening below a bearish candle's close and
// closing above the midpoint of its body without engulfing it.
func isPiercing(bars []models.Bar, i int) bool {
	if i < 1 {
		return false
	}
	prev, cur := bars[i-1], bars[i]
	if !prev.IsBearish() || !cur.IsBullish() {
		return false
	}
	midpoint := (prev.Open + prev.Close) / 2
	return cur.Open < prev.Close && cur.Close > midpoint && cur.Close < prev.Open
}

// isDarkCloudCover: mirror of the piercing line.
func isDarkCloudCover(bars []models.Bar, i int) bool {
	if i < 1 {
		return false
	}
	prev, cur := bars[i-1], bars[i]
	if !prev.IsBullish() || !cur.IsBearish() {
		return false
	}
	midpoint := (prev.Open + prev.Close) / 2
	return cur.Open > prev.Close && cur.Close < midpoint && cur.Close > prev.Open
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

var predicates = map[models.PatternKind]func([]models.Bar, int) bool{
	models.PatternBullishEngulfing:   isBullishEngulfing,
	models.PatternHammer:             isHammer,
	models.PatternMorningStar:        isMorningStar,
	models.PatternThreeWhiteSoldiers: isThreeWhiteSoldiers,
	models.PatternPiercing:           isPiercing,
	models.PatternDojiStar:           isDojiStar,
	models.PatternBearishEngulfing:   isBearishEngulfing,
	models.PatternHangingMan:         isHangingMan,
	models.PatternEveningStar:        isEveningStar,
	models.PatternThreeBlackCrows:    isThreeBlackCrows,
	models.PatternDarkCloudCover:     isDarkCloudCover,
	models.PatternShootingStar:       isShootingStar,
}
