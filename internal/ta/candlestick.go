package ta

import (
	"math"

	"chartsight/internal/model"
)

// DetectCandlestickPatterns inspects the most recent candle for Doji and
// Hammer shapes. At least three candles are required for the read to be
// meaningful; with fewer no patterns are emitted. The checks are independent,
// so zero, one or both patterns may come back.
func DetectCandlestickPatterns(candles []model.Candle) []model.TechnicalIndicator {
	var patterns []model.TechnicalIndicator

	if len(candles) < 3 {
		return patterns
	}

	latest := candles[len(candles)-1]

	bodySize := math.Abs(latest.Close - latest.Open)
	candleRange := latest.High - latest.Low

	// A zero-range candle has no shape to classify; skipping it also avoids
	// dividing by zero.
	if candleRange > 0 && bodySize/candleRange < 0.1 {
		patterns = append(patterns, model.TechnicalIndicator{
			Name:        "Doji",
			Value:       "Detected",
			Signal:      model.SignalNeutral,
			Description: "Doji candle detected, market indecision and a possible direction change",
		})
	}

	lowerShadow := math.Min(latest.Open, latest.Close) - latest.Low
	upperShadow := latest.High - math.Max(latest.Open, latest.Close)

	if lowerShadow > bodySize*2 && upperShadow < bodySize*0.5 {
		patterns = append(patterns, model.TechnicalIndicator{
			Name:        "Hammer",
			Value:       "Detected",
			Signal:      model.SignalBuy,
			Description: "Hammer candle detected, bounce signal",
		})
	}

	return patterns
}
