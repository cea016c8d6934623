package analysis

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"chartsight/internal/model"
)

const (
	defaultConfidence       = 50
	defaultReasoning        = "No specific recommendation available"
	unparsedReasoning       = "Unable to parse detailed analysis"
	degradedTrendDefault    = model.TrendSideways
	recommendationActionDef = model.ActionHold
)

// Default returns the fixed fallback analysis used whenever structured
// extraction yields nothing usable. The raw upstream text is preserved
// verbatim for post-hoc diagnosis.
func Default(raw string) model.ChartAnalysis {
	return model.ChartAnalysis{
		ID:         uuid.NewString(),
		Timestamp:  time.Now(),
		Trend:      degradedTrendDefault,
		Confidence: defaultConfidence,
		KeyLevels:  model.KeyLevels{Support: []float64{}, Resistance: []float64{}},
		Indicators: []model.TechnicalIndicator{},
		Recommendation: model.Recommendation{
			Action:    recommendationActionDef,
			Reasoning: unparsedReasoning,
		},
		RawAnalysis: raw,
	}
}

// BuildFromText produces one well-formed ChartAnalysis from untrusted
// upstream text. It never fails: any problem short of the provider call
// itself failing is absorbed by defaulting, per field or wholesale.
func BuildFromText(raw string) model.ChartAnalysis {
	logger := log.With().Str("component", "aggregator").Logger()

	jsonStr, ok := ExtractJSONObject(raw)
	if !ok {
		logger.Warn().Msg("No JSON object found in upstream text, using default analysis")
		return Default(raw)
	}

	var candidate map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &candidate); err != nil {
		logger.Warn().Err(err).Msg("Extracted JSON failed to decode, using default analysis")
		return Default(raw)
	}

	return normalize(candidate, raw)
}

// normalize validates the loosely-typed candidate field by field into the
// canonical shape, applying the documented default for anything absent,
// mistyped or out of domain. ID and Timestamp are never trusted from the
// candidate.
func normalize(candidate map[string]any, raw string) model.ChartAnalysis {
	analysis := model.ChartAnalysis{
		ID:          uuid.NewString(),
		Timestamp:   time.Now(),
		RawAnalysis: raw,
	}

	analysis.Trend = degradedTrendDefault
	if s, ok := coerceString(candidate["trend"]); ok {
		if t := model.Trend(s); t.Valid() {
			analysis.Trend = t
		}
	}

	analysis.Confidence = defaultConfidence
	if f, ok := coerceFloat(candidate["confidence"]); ok {
		analysis.Confidence = clampConfidence(int(f))
	}

	analysis.KeyLevels = normalizeKeyLevels(candidate["keyLevels"])
	analysis.Indicators = normalizeIndicators(candidate["indicators"])
	analysis.Recommendation = normalizeRecommendation(candidate["recommendation"])

	return analysis
}

func normalizeKeyLevels(v any) model.KeyLevels {
	levels := model.KeyLevels{Support: []float64{}, Resistance: []float64{}}

	m, ok := v.(map[string]any)
	if !ok {
		return levels
	}

	levels.Support = normalizePriceList(m["support"])
	levels.Resistance = normalizePriceList(m["resistance"])
	return levels
}

// normalizePriceList keeps input order and skips entries that do not coerce
// to a number. No dedup, no sort.
func normalizePriceList(v any) []float64 {
	prices := []float64{}

	list, ok := v.([]any)
	if !ok {
		return prices
	}

	for _, item := range list {
		if f, ok := coerceFloat(item); ok {
			prices = append(prices, f)
		}
	}
	return prices
}

func normalizeIndicators(v any) []model.TechnicalIndicator {
	indicators := []model.TechnicalIndicator{}

	list, ok := v.([]any)
	if !ok {
		return indicators
	}

	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}

		var ind model.TechnicalIndicator
		ind.Name, _ = coerceString(m["name"])
		ind.Value, _ = coerceString(m["value"])
		ind.Description, _ = coerceString(m["description"])

		ind.Signal = model.SignalNeutral
		if s, ok := coerceString(m["signal"]); ok {
			if sig := model.Signal(s); sig.Valid() {
				ind.Signal = sig
			}
		}

		indicators = append(indicators, ind)
	}
	return indicators
}

func normalizeRecommendation(v any) model.Recommendation {
	rec := model.Recommendation{
		Action:    recommendationActionDef,
		Reasoning: defaultReasoning,
	}

	m, ok := v.(map[string]any)
	if !ok {
		return rec
	}

	if s, ok := coerceString(m["action"]); ok {
		if a := model.Action(s); a.Valid() {
			rec.Action = a
		}
	}
	if s, ok := coerceString(m["reasoning"]); ok && s != "" {
		rec.Reasoning = s
	}

	rec.EntryPoint = coerceFloatPtr(m["entryPoint"])
	rec.StopLoss = coerceFloatPtr(m["stopLoss"])
	rec.TakeProfit = coerceFloatPtr(m["takeProfit"])

	return rec
}

// clampConfidence bounds the reported confidence to [0,100]. The upstream
// shape never guaranteed the range, so out-of-range readings are pinned
// rather than trusted.
func clampConfidence(c int) int {
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}

func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

func coerceFloatPtr(v any) *float64 {
	if f, ok := coerceFloat(v); ok {
		return &f
	}
	return nil
}

func coerceString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(s), true
	}
	return "", false
}
