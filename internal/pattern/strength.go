package pattern

import "github.com/signalforge/analytics/models"

// strengthScore rates an occurrence on a 0-1 scale from the geometry of the
// candles involved: how much an engulfing body exceeds the engulfed one, the
// shadow-to-body ratio of a hammer, how close a doji body is to zero.
func strengthScore(kind models.PatternKind, bars []models.Bar, i int) float64 {
	cur := bars[i]
	switch kind {
	case models.PatternBullishEngulfing, models.PatternBearishEngulfing:
		prevBody := bars[i-1].Body()
		if prevBody == 0 {
			return 1
		}
		return clamp01(cur.Body()/prevBody - 1)

	case models.PatternHammer, models.PatternHangingMan:
		body := cur.Body()
		if body == 0 {
			return 0
		}
		// 2x shadow is the entry bar; 4x and above reads as full strength.
		return clamp01((cur.LowerShadow()/body - 2) / 2)

	case models.PatternShootingStar:
		body := cur.Body()
		if body == 0 {
			return 0
		}
		return clamp01((cur.UpperShadow()/body - 2) / 2)

	case models.PatternDojiStar:
		rng := cur.Range()
		if rng == 0 {
			return 0
		}
		return clamp01(1 - cur.Body()/rng)

	case models.PatternMorningStar, models.PatternEveningStar:
		firstBody := bars[i-2].Body()
		if firstBody == 0 {
			return 0
		}
		return clamp01(1 - bars[i-1].Body()/firstBody)

	case models.PatternThreeWhiteSoldiers, models.PatternThreeBlackCrows:
		avg := (bars[i-2].Body() + bars[i-1].Body() + cur.Body()) / 3
		if avg == 0 {
			return 0
		}
		spread := absF(bars[i-2].Body()-avg) + absF(bars[i-1].Body()-avg) + absF(cur.Body()-avg)
		return clamp01(1 - spread/(avg*3))

	case models.PatternPiercing, models.PatternDarkCloudCover:
		prev := bars[i-1]
		if prev.Body() == 0 {
			return 0
		}
		// How far past the midpoint the close retraced.
		midpoint := (prev.Open + prev.Close) / 2
		return clamp01(absF(cur.Close-midpoint) / (prev.Body() / 2))

	default:
		return 0.5
	}
}

// label maps a 0-1 score onto the qualitative scale.
func label(score float64) models.Strength {
	switch {
	case score >= 0.6:
		return models.StrengthStrong
	case score >= 0.3:
		return models.StrengthModerate
	default:
		return models.StrengthWeak
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
