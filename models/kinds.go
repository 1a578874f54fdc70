package models

import "fmt"

// Direction classifies a pattern or signal as bullish or bearish.
type Direction string

const (
	Bullish Direction = "bullish"
	Bearish Direction = "bearish"
)

// IndicatorKind identifies an indicator family. Period-parameterized
// families (SMA, EMA) key their output via Key; the rest use the bare name.
type IndicatorKind string

const (
	IndSMA        IndicatorKind = "sma"
	IndEMA        IndicatorKind = "ema"
	IndRSI        IndicatorKind = "rsi"
	IndMACD       IndicatorKind = "macd"
	IndMACDSignal IndicatorKind = "macd_signal"
	IndMACDHist   IndicatorKind = "macd_hist"
	IndBBUpper    IndicatorKind = "bb_upper"
	IndBBMiddle   IndicatorKind = "bb_middle"
	IndBBLower    IndicatorKind = "bb_lower"
	IndStochK     IndicatorKind = "stoch_k"
	IndStochD     IndicatorKind = "stoch_d"
	IndADX        IndicatorKind = "adx"
	IndPlusDI     IndicatorKind = "plus_di"
	IndMinusDI    IndicatorKind = "minus_di"
	IndATR        IndicatorKind = "atr"
	IndOBV        IndicatorKind = "obv"
)

// Key builds the output map key for a period-parameterized indicator,
// e.g. IndSMA.Key(20) == "sma_20".
func (k IndicatorKind) Key(period int) string {
	return fmt.Sprintf("%s_%d", string(k), period)
}

// IndicatorSet maps indicator keys to bar-aligned value series.
type IndicatorSet map[string]Series

// PatternKind identifies a candlestick formation. The set is closed so that
// detection and serialization stay exhaustive.
type PatternKind string

const (
	PatternBullishEngulfing   PatternKind = "bullish_engulfing"
	PatternHammer             PatternKind = "hammer"
	PatternMorningStar        PatternKind = "morning_star"
	PatternThreeWhiteSoldiers PatternKind = "three_white_soldiers"
	PatternPiercing           PatternKind = "piercing"
	PatternDojiStar           PatternKind = "doji_star"

	PatternBearishEngulfing PatternKind = "bearish_engulfing"
	PatternHangingMan       PatternKind = "hanging_man"
	PatternEveningStar      PatternKind = "evening_star"
	PatternThreeBlackCrows  PatternKind = "three_black_crows"
	PatternDarkCloudCover   PatternKind = "dark_cloud_cover"
	PatternShootingStar     PatternKind = "shooting_star"
)

// AllPatternKinds returns every known pattern, bullish first.
func AllPatternKinds() []PatternKind {
	return []PatternKind{
		PatternBullishEngulfing,
		PatternHammer,
		PatternMorningStar,
		PatternThreeWhiteSoldiers,
		PatternPiercing,
		PatternDojiStar,
		PatternBearishEngulfing,
		PatternHangingMan,
		PatternEveningStar,
		PatternThreeBlackCrows,
		PatternDarkCloudCover,
		PatternShootingStar,
	}
}

// Direction returns the implied direction of the pattern.
func (k PatternKind) Direction() Direction {
	switch k {
	case PatternBullishEngulfing, PatternHammer, PatternMorningStar,
		PatternThreeWhiteSoldiers, PatternPiercing, PatternDojiStar:
		return Bullish
	default:
		return Bearish
	}
}

// Valid reports whether k names a known pattern.
func (k PatternKind) Valid() bool {
	for _, p := range AllPatternKinds() {
		if p == k {
			return true
		}
	}
	return false
}

// SignalKind identifies a discrete indicator-derived signal.
type SignalKind string

const (
	SignalRSIOversold      SignalKind = "rsi_oversold"
	SignalRSIOverbought    SignalKind = "rsi_overbought"
	SignalMACDBullishCross SignalKind = "macd_bullish_cross"
	SignalMACDBearishCross SignalKind = "macd_bearish_cross"
	SignalBBLowerTouch     SignalKind = "bb_lower_touch"
	SignalBBUpperTouch     SignalKind = "bb_upper_touch"
	SignalGoldenCross      SignalKind = "golden_cross"
	SignalDeathCross       SignalKind = "death_cross"
	SignalStochOversold    SignalKind = "stoch_oversold"
	SignalStochOverbought  SignalKind = "stoch_overbought"
)

// AllSignalKinds returns every known signal.
func AllSignalKinds() []SignalKind {
	return []SignalKind{
		SignalRSIOversold,
		SignalRSIOverbought,
		SignalMACDBullishCross,
		SignalMACDBearishCross,
		SignalBBLowerTouch,
		SignalBBUpperTouch,
		SignalGoldenCross,
		SignalDeathCross,
		SignalStochOversold,
		SignalStochOverbought,
	}
}

// Direction returns the implied direction of the signal.
func (k SignalKind) Direction() Direction {
	switch k {
	case SignalRSIOversold, SignalMACDBullishCross, SignalBBLowerTouch,
		SignalGoldenCross, SignalStochOversold:
		return Bullish
	default:
		return Bearish
	}
}
