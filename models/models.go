package models

import (
	"math"
	"time"
)

// Bar represents a single OHLCV price bar. Bars are never mutated after
// construction; all downstream series are derived from fresh copies.
type Bar struct {
	Timestamp time.Time `json:"t"`
	Open      float64   `json:"o"`
	High      float64   `json:"h"`
	Low       float64   `json:"l"`
	Close     float64   `json:"c"`
	Volume    float64   `json:"v"`
}

// Body returns the absolute size of the candle body.
func (b Bar) Body() float64 {
	return math.Abs(b.Close - b.Open)
}

// UpperShadow returns the wick above the body.
func (b Bar) UpperShadow() float64 {
	return b.High - math.Max(b.Open, b.Close)
}

// LowerShadow returns the wick below the body.
func (b Bar) LowerShadow() float64 {
	return math.Min(b.Open, b.Close) - b.Low
}

// Range returns the full high-low extent of the bar.
func (b Bar) Range() float64 {
	return b.High - b.Low
}

// IsBullish reports whether the bar closed above its open.
func (b Bar) IsBullish() bool {
	return b.Close > b.Open
}

// IsBearish reports whether the bar closed below its open.
func (b Bar) IsBearish() bool {
	return b.Close < b.Open
}

// Strength is a qualitative score attached to a pattern occurrence.
type Strength string

const (
	StrengthWeak     Strength = "weak"
	StrengthModerate Strength = "moderate"
	StrengthStrong   Strength = "strong"
)

// PatternOccurrence marks a candlestick formation at a specific bar index.
type PatternOccurrence struct {
	Kind      PatternKind `json:"pattern"`
	Index     int         `json:"index"`
	Direction Direction   `json:"direction"`
	Strength  Strength    `json:"strength"`
}

// SignalEvent marks a discrete indicator-derived event at a specific bar index.
type SignalEvent struct {
	Kind      SignalKind `json:"signal"`
	Index     int        `json:"index"`
	Direction Direction  `json:"direction"`
}

// BacktestOccurrence records the realized forward move for one occurrence.
type BacktestOccurrence struct {
	Index         int     `json:"index"`
	EntryPrice    float64 `json:"entry_price"`
	ExitPrice     float64 `json:"exit_price"`
	PercentChange float64 `json:"percent_change"`
	Success       bool    `json:"success"`
}

// BacktestResult aggregates forward-horizon outcomes for one pattern or
// signal. Occurrences without a full forward horizon are excluded entirely,
// so SuccessRate is always computed over evaluated occurrences only.
// InsufficientData distinguishes "no evidence" from a genuine 0% rate.
type BacktestResult struct {
	Subject          string               `json:"subject"`
	OccurrenceCount  int                  `json:"occurrence_count"`
	SuccessRate      float64              `json:"success_rate"`
	AvgPercentChange float64              `json:"avg_percent_change"`
	InsufficientData bool                 `json:"insufficient_data"`
	Details          []BacktestOccurrence `json:"details,omitempty"`
}

// PriceData holds the per-bar price columns of the bundle.
type PriceData struct {
	Open   []float64 `json:"open"`
	High   []float64 `json:"high"`
	Low    []float64 `json:"low"`
	Close  []float64 `json:"close"`
	Volume []float64 `json:"volume"`
}

// PatternMatrix holds dense 0/1 occurrence arrays keyed by pattern name,
// split by direction. Arrays align positionally with the datetime axis.
type PatternMatrix struct {
	Bullish map[string][]int `json:"bullish"`
	Bearish map[string][]int `json:"bearish"`
}

// ChartData is the immutable analytics bundle handed to external consumers.
// Its JSON shape is the rendering contract: indicator warm-up values
// serialize as null, pattern and signal arrays are 0/1 per bar.
type ChartData struct {
	Symbol     string                    `json:"symbol,omitempty"`
	Datetime   []string                  `json:"datetime"`
	Price      PriceData                 `json:"price"`
	Indicators IndicatorSet              `json:"indicators"`
	Patterns   PatternMatrix             `json:"patterns"`
	Signals    map[string][]int          `json:"signals"`
	Backtests  map[string]BacktestResult `json:"backtests"`
}

// DatetimeLayout is the format used for the bundle's datetime axis.
const DatetimeLayout = "2006-01-02 15:04:05"
