package analysis

import (
	"time"

	"github.com/google/uuid"

	"chartsight/internal/model"
	"chartsight/internal/ta"
)

// MACDInput holds the raw MACD readings.
type MACDInput struct {
	MACDLine   float64 `json:"macdLine"`
	SignalLine float64 `json:"signalLine"`
	Histogram  float64 `json:"histogram"`
}

// MovingAverageInput holds the raw moving-average readings.
type MovingAverageInput struct {
	CurrentPrice float64 `json:"currentPrice"`
	MA20         float64 `json:"ma20"`
	MA50         float64 `json:"ma50"`
	MA200        float64 `json:"ma200"`
}

// BollingerInput holds the raw Bollinger Band readings.
type BollingerInput struct {
	CurrentPrice float64 `json:"currentPrice"`
	UpperBand    float64 `json:"upperBand"`
	LowerBand    float64 `json:"lowerBand"`
	MiddleBand   float64 `json:"middleBand"`
}

// VolumeInput holds the raw volume readings. AverageVolume must be nonzero.
type VolumeInput struct {
	CurrentVolume float64 `json:"currentVolume"`
	AverageVolume float64 `json:"averageVolume"`
}

// IndicatorInputs carries raw numeric readings per indicator kind. Absent
// indicators are skipped; trend, confidence, key levels and recommendation
// may be caller-supplied and are otherwise defaulted by the same rules as
// the text path.
type IndicatorInputs struct {
	RSI            *float64              `json:"rsi,omitempty"`
	MACD           *MACDInput            `json:"macd,omitempty"`
	MovingAverages *MovingAverageInput   `json:"movingAverages,omitempty"`
	Bollinger      *BollingerInput       `json:"bollingerBands,omitempty"`
	Volume         *VolumeInput          `json:"volume,omitempty"`
	Candles        []model.Candle        `json:"candles,omitempty"`
	Trend          *model.Trend          `json:"trend,omitempty"`
	Confidence     *int                  `json:"confidence,omitempty"`
	KeyLevels      *model.KeyLevels      `json:"keyLevels,omitempty"`
	Recommendation *model.Recommendation `json:"recommendation,omitempty"`
}

// BuildFromIndicators assembles a ChartAnalysis directly from numeric
// readings, running each supplied indicator through the interpreter in a
// fixed evaluation order: RSI, MACD, moving averages, Bollinger Bands,
// volume, candlestick patterns.
func BuildFromIndicators(in IndicatorInputs) model.ChartAnalysis {
	analysis := model.ChartAnalysis{
		ID:         uuid.NewString(),
		Timestamp:  time.Now(),
		Trend:      degradedTrendDefault,
		Confidence: defaultConfidence,
		KeyLevels:  model.KeyLevels{Support: []float64{}, Resistance: []float64{}},
		Indicators: []model.TechnicalIndicator{},
		Recommendation: model.Recommendation{
			Action:    recommendationActionDef,
			Reasoning: defaultReasoning,
		},
	}

	if in.Trend != nil && in.Trend.Valid() {
		analysis.Trend = *in.Trend
	}
	if in.Confidence != nil {
		analysis.Confidence = clampConfidence(*in.Confidence)
	}
	if in.KeyLevels != nil {
		if in.KeyLevels.Support != nil {
			analysis.KeyLevels.Support = in.KeyLevels.Support
		}
		if in.KeyLevels.Resistance != nil {
			analysis.KeyLevels.Resistance = in.KeyLevels.Resistance
		}
	}
	if in.Recommendation != nil {
		rec := *in.Recommendation
		if !rec.Action.Valid() {
			rec.Action = recommendationActionDef
		}
		if rec.Reasoning == "" {
			rec.Reasoning = defaultReasoning
		}
		analysis.Recommendation = rec
	}

	if in.RSI != nil {
		analysis.Indicators = append(analysis.Indicators, ta.InterpretRSI(*in.RSI))
	}
	if in.MACD != nil {
		analysis.Indicators = append(analysis.Indicators,
			ta.InterpretMACD(in.MACD.MACDLine, in.MACD.SignalLine, in.MACD.Histogram))
	}
	if in.MovingAverages != nil {
		analysis.Indicators = append(analysis.Indicators,
			ta.InterpretMovingAverages(in.MovingAverages.CurrentPrice,
				in.MovingAverages.MA20, in.MovingAverages.MA50, in.MovingAverages.MA200)...)
	}
	if in.Bollinger != nil {
		analysis.Indicators = append(analysis.Indicators,
			ta.InterpretBollingerBands(in.Bollinger.CurrentPrice,
				in.Bollinger.UpperBand, in.Bollinger.LowerBand, in.Bollinger.MiddleBand))
	}
	if in.Volume != nil {
		analysis.Indicators = append(analysis.Indicators,
			ta.InterpretVolume(in.Volume.CurrentVolume, in.Volume.AverageVolume))
	}
	if len(in.Candles) > 0 {
		analysis.Indicators = append(analysis.Indicators, ta.DetectCandlestickPatterns(in.Candles)...)
	}

	return analysis
}
