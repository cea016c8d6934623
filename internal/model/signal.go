package model

// Signal is the per-indicator verdict.
type Signal string

const (
	SignalBuy     Signal = "BUY"
	SignalSell    Signal = "SELL"
	SignalHold    Signal = "HOLD"
	SignalNeutral Signal = "NEUTRAL"
)

// Valid reports whether s is one of the known signal values.
func (s Signal) Valid() bool {
	switch s {
	case SignalBuy, SignalSell, SignalHold, SignalNeutral:
		return true
	}
	return false
}

// Trend is the overall direction read from the chart.
type Trend string

const (
	TrendBullish  Trend = "BULLISH"
	TrendBearish  Trend = "BEARISH"
	TrendSideways Trend = "SIDEWAYS"
)

// Valid reports whether t is one of the known trend values.
func (t Trend) Valid() bool {
	switch t {
	case TrendBullish, TrendBearish, TrendSideways:
		return true
	}
	return false
}

// Action is the final trading recommendation.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"
)

// Valid reports whether a is one of the known action values.
func (a Action) Valid() bool {
	switch a {
	case ActionBuy, ActionSell, ActionHold:
		return true
	}
	return false
}
