package model

// Candle represents a single price candle
type Candle struct {
	Datetime string  `json:"datetime,omitempty"`
	Open     float64 `json:"open"`
	High     float64 `json:"high"`
	Low      float64 `json:"low"`
	Close    float64 `json:"close"`
	Volume   int64   `json:"volume,omitempty"`
}
