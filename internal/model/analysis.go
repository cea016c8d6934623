package model

import "time"

// TechnicalIndicator is one evaluated indicator with its signal and rationale.
type TechnicalIndicator struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Signal      Signal `json:"signal"`
	Description string `json:"description"`
}

// KeyLevels holds support and resistance prices in discovery order.
type KeyLevels struct {
	Support    []float64 `json:"support"`
	Resistance []float64 `json:"resistance"`
}

// Recommendation is the final trading call. Price levels are present only
// when the action is actionable and the levels are known.
type Recommendation struct {
	Action     Action   `json:"action"`
	EntryPoint *float64 `json:"entryPoint,omitempty"`
	StopLoss   *float64 `json:"stopLoss,omitempty"`
	TakeProfit *float64 `json:"takeProfit,omitempty"`
	Reasoning  string   `json:"reasoning"`
}

// ChartAnalysis is the canonical analysis result. ID and Timestamp are always
// assigned at construction and never taken from upstream content; ImageURL is
// filled in by the boundary layer after construction.
type ChartAnalysis struct {
	ID             string               `json:"id"`
	Timestamp      time.Time            `json:"timestamp"`
	ImageURL       string               `json:"imageUrl"`
	Trend          Trend                `json:"trend"`
	Confidence     int                  `json:"confidence"`
	KeyLevels      KeyLevels            `json:"keyLevels"`
	Indicators     []TechnicalIndicator `json:"indicators"`
	Recommendation Recommendation       `json:"recommendation"`
	RawAnalysis    string               `json:"rawAnalysis"`
}

// AnalysisResponse is the HTTP envelope returned by the API.
type AnalysisResponse struct {
	Success bool           `json:"success"`
	Data    *ChartAnalysis `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}
