package models

// IndicatorConfig enumerates the requested indicator battery and its
// periods. The zero value is not usable; start from DefaultAnalysisConfig
// and override.
type IndicatorConfig struct {
	SMAPeriods   []int   `yaml:"sma" json:"sma"`
	EMAPeriods   []int   `yaml:"ema" json:"ema"`
	RSIPeriod    int     `yaml:"rsi" json:"rsi"`
	MACDFast     int     `yaml:"macd_fast" json:"macd_fast"`
	MACDSlow     int     `yaml:"macd_slow" json:"macd_slow"`
	MACDSignal   int     `yaml:"macd_signal" json:"macd_signal"`
	BBPeriod     int     `yaml:"bb_period" json:"bb_period"`
	BBStdDev     float64 `yaml:"bb_std_dev" json:"bb_std_dev"`
	StochPeriod  int     `yaml:"stoch_period" json:"stoch_period"`
	StochSmoothK int     `yaml:"stoch_smooth_k" json:"stoch_smooth_k"`
	StochSmoothD int     `yaml:"stoch_smooth_d" json:"stoch_smooth_d"`
	ADXPeriod    int     `yaml:"adx" json:"adx"`
	ATRPeriod    int     `yaml:"atr" json:"atr"`
}

// SignalConfig holds the thresholds and crossover pair for signal detection.
type SignalConfig struct {
	RSIOversold     float64 `yaml:"rsi_oversold" json:"rsi_oversold"`
	RSIOverbought   float64 `yaml:"rsi_overbought" json:"rsi_overbought"`
	StochOversold   float64 `yaml:"stoch_oversold" json:"stoch_oversold"`
	StochOverbought float64 `yaml:"stoch_overbought" json:"stoch_overbought"`
	FastSMAPeriod   int     `yaml:"fast_sma" json:"fast_sma"`
	SlowSMAPeriod   int     `yaml:"slow_sma" json:"slow_sma"`
}

// AnalysisConfig is the full request configuration for one pipeline run.
type AnalysisConfig struct {
	Indicators IndicatorConfig `yaml:"indicators" json:"indicators"`
	// Patterns limits detection to the named formations; empty means all.
	Patterns []PatternKind `yaml:"patterns" json:"patterns"`
	Signals  SignalConfig  `yaml:"signals" json:"signals"`
	// BacktestHorizon is the number of bars ahead used to judge whether an
	// occurrence's implied direction was realized.
	BacktestHorizon int `yaml:"backtest_horizon" json:"backtest_horizon"`
}

// DefaultBacktestHorizon is the forward horizon used when none is configured.
const DefaultBacktestHorizon = 5

// DefaultAnalysisConfig returns the standard battery: SMA 20/50/200,
// EMA 12/26, MACD 12/26/9, RSI 14, Bollinger 20/2.0, Stochastic 14/3/3,
// ADX 14, ATR 14, every pattern, SMA 50/200 crossovers, horizon 5.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		Indicators: IndicatorConfig{
			SMAPeriods:   []int{20, 50, 200},
			EMAPeriods:   []int{12, 26},
			RSIPeriod:    14,
			MACDFast:     12,
			MACDSlow:     26,
			MACDSignal:   9,
			BBPeriod:     20,
			BBStdDev:     2.0,
			StochPeriod:  14,
			StochSmoothK: 3,
			StochSmoothD: 3,
			ADXPeriod:    14,
			ATRPeriod:    14,
		},
		Signals: SignalConfig{
			RSIOversold:     30,
			RSIOverbought:   70,
			StochOversold:   20,
			StochOverbought: 80,
			FastSMAPeriod:   50,
			SlowSMAPeriod:   200,
		},
		BacktestHorizon: DefaultBacktestHorizon,
	}
}

// Validate checks every parameter and returns a ConfigurationError for the
// first violation found.
func (c *AnalysisConfig) Validate() error {
	ind := c.Indicators
	for _, p := range ind.SMAPeriods {
		if p <= 0 {
			return &ConfigurationError{Param: "sma", Reason: "period must be positive"}
		}
	}
	for _, p := range ind.EMAPeriods {
		if p <= 0 {
			return &ConfigurationError{Param: "ema", Reason: "period must be positive"}
		}
	}
	positive := []struct {
		name string
		v    int
	}{
		{"rsi", ind.RSIPeriod},
		{"macd_fast", ind.MACDFast},
		{"macd_slow", ind.MACDSlow},
		{"macd_signal", ind.MACDSignal},
		{"bb_period", ind.BBPeriod},
		{"stoch_period", ind.StochPeriod},
		{"stoch_smooth_k", ind.StochSmoothK},
		{"stoch_smooth_d", ind.StochSmoothD},
		{"adx", ind.ADXPeriod},
		{"atr", ind.ATRPeriod},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return &ConfigurationError{Param: p.name, Reason: "period must be positive"}
		}
	}
	if ind.MACDFast >= ind.MACDSlow {
		return &ConfigurationError{Param: "macd_fast", Reason: "fast period must be below slow period"}
	}
	if ind.BBStdDev <= 0 {
		return &ConfigurationError{Param: "bb_std_dev", Reason: "multiplier must be positive"}
	}
	for _, k := range c.Patterns {
		if !k.Valid() {
			return &ConfigurationError{Param: "patterns", Reason: "unknown pattern " + string(k)}
		}
	}
	sig := c.Signals
	if sig.RSIOversold >= sig.RSIOverbought {
		return &ConfigurationError{Param: "rsi_oversold", Reason: "oversold threshold must be below overbought"}
	}
	if sig.StochOversold >= sig.StochOverbought {
		return &ConfigurationError{Param: "stoch_oversold", Reason: "oversold threshold must be below overbought"}
	}
	if sig.FastSMAPeriod <= 0 || sig.SlowSMAPeriod <= 0 {
		return &ConfigurationError{Param: "fast_sma", Reason: "crossover periods must be positive"}
	}
	if sig.FastSMAPeriod >= sig.SlowSMAPeriod {
		return &ConfigurationError{Param: "fast_sma", Reason: "fast period must be below slow period"}
	}
	if c.BacktestHorizon <= 0 {
		return &ConfigurationError{Param: "backtest_horizon", Reason: "horizon must be positive"}
	}
	return nil
}
