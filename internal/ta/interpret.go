package ta

import (
	"fmt"
	"strconv"
	"strings"

	"chartsight/internal/model"
)

// InterpretRSI maps an RSI reading to a signal. 70 and 30 are the inclusive
// overbought/oversold cut points; between them 50 separates upward from
// downward bias.
func InterpretRSI(value float64) model.TechnicalIndicator {
	var signal model.Signal
	var description string

	vs := formatNumber(value)

	switch {
	case value >= 70:
		signal = model.SignalSell
		description = fmt.Sprintf("RSI at %s suggests the market may be overbought, watch for a pullback", vs)
	case value <= 30:
		signal = model.SignalBuy
		description = fmt.Sprintf("RSI at %s suggests the market may be oversold, a bounce is possible", vs)
	case value >= 50:
		signal = model.SignalHold
		description = fmt.Sprintf("RSI at %s indicates an upward bias", vs)
	default:
		signal = model.SignalHold
		description = fmt.Sprintf("RSI at %s indicates a downward bias", vs)
	}

	return model.TechnicalIndicator{
		Name:        "RSI",
		Value:       vs,
		Signal:      signal,
		Description: description,
	}
}

// InterpretMACD maps the MACD line, signal line and histogram to a signal.
// A crossover counts as confirmed only when the histogram agrees with it.
func InterpretMACD(macdLine, signalLine, histogram float64) model.TechnicalIndicator {
	var signal model.Signal
	var description string

	switch {
	case macdLine > signalLine && histogram > 0:
		signal = model.SignalBuy
		description = "MACD line crossed above the signal line with a positive histogram, bullish signal"
	case macdLine < signalLine && histogram < 0:
		signal = model.SignalSell
		description = "MACD line crossed below the signal line with a negative histogram, bearish signal"
	case macdLine > signalLine:
		signal = model.SignalHold
		description = "MACD line is above the signal line, upward bias"
	default:
		signal = model.SignalHold
		description = "MACD line is below the signal line, downward bias"
	}

	return model.TechnicalIndicator{
		Name:        "MACD",
		Value:       strconv.FormatFloat(macdLine, 'f', 4, 64),
		Signal:      signal,
		Description: description,
	}
}

// InterpretMovingAverages produces the MA20 and MA200 indicators from the
// current price. ma50 is accepted for interface completeness but does not
// participate in the signal logic.
func InterpretMovingAverages(currentPrice, ma20, ma50, ma200 float64) []model.TechnicalIndicator {
	indicators := make([]model.TechnicalIndicator, 0, 2)

	ma20Value := strconv.FormatFloat(ma20, 'f', 2, 64)
	if currentPrice > ma20 {
		indicators = append(indicators, model.TechnicalIndicator{
			Name:        "MA20",
			Value:       ma20Value,
			Signal:      model.SignalBuy,
			Description: fmt.Sprintf("Price is above MA20 (%s), short-term uptrend", ma20Value),
		})
	} else {
		indicators = append(indicators, model.TechnicalIndicator{
			Name:        "MA20",
			Value:       ma20Value,
			Signal:      model.SignalSell,
			Description: fmt.Sprintf("Price is below MA20 (%s), short-term downtrend", ma20Value),
		})
	}

	ma200Value := strconv.FormatFloat(ma200, 'f', 2, 64)
	if currentPrice > ma200 {
		indicators = append(indicators, model.TechnicalIndicator{
			Name:        "MA200",
			Value:       ma200Value,
			Signal:      model.SignalBuy,
			Description: fmt.Sprintf("Price is above MA200 (%s), long-term bull market", ma200Value),
		})
	} else {
		indicators = append(indicators, model.TechnicalIndicator{
			Name:        "MA200",
			Value:       ma200Value,
			Signal:      model.SignalSell,
			Description: fmt.Sprintf("Price is below MA200 (%s), long-term bear market", ma200Value),
		})
	}

	return indicators
}

// InterpretBollingerBands maps the current price position inside the band
// envelope to a signal. Touching the upper or lower band is inclusive.
func InterpretBollingerBands(currentPrice, upperBand, lowerBand, middleBand float64) model.TechnicalIndicator {
	var signal model.Signal
	var description string

	switch {
	case currentPrice >= upperBand:
		signal = model.SignalSell
		description = fmt.Sprintf("Price tagged the upper Bollinger Band (%.2f), possibly overbought", upperBand)
	case currentPrice <= lowerBand:
		signal = model.SignalBuy
		description = fmt.Sprintf("Price tagged the lower Bollinger Band (%.2f), possibly oversold", lowerBand)
	case currentPrice > middleBand:
		signal = model.SignalHold
		description = fmt.Sprintf("Price is above the middle band (%.2f), buying pressure dominant", middleBand)
	default:
		signal = model.SignalHold
		description = fmt.Sprintf("Price is below the middle band (%.2f), selling pressure dominant", middleBand)
	}

	return model.TechnicalIndicator{
		Name:        "Bollinger Bands",
		Value:       fmt.Sprintf("%.2f / %.2f / %.2f", upperBand, middleBand, lowerBand),
		Signal:      signal,
		Description: description,
	}
}

// InterpretVolume maps the current-to-average volume ratio to a signal.
// averageVolume must be nonzero; that is the caller's contract.
func InterpretVolume(currentVolume, averageVolume float64) model.TechnicalIndicator {
	var signal model.Signal
	var description string

	ratio := currentVolume / averageVolume

	switch {
	case ratio >= 2:
		signal = model.SignalBuy
		description = fmt.Sprintf("Volume is %.1fx the average, confirms the move", ratio)
	case ratio >= 1.5:
		signal = model.SignalHold
		description = fmt.Sprintf("Volume is %.1fx the average, rising interest", ratio)
	case ratio <= 0.5:
		signal = model.SignalNeutral
		description = "Volume is below average, lack of interest"
	default:
		signal = model.SignalNeutral
		description = "Volume is normal, no clear signal"
	}

	return model.TechnicalIndicator{
		Name:        "Volume",
		Value:       formatNumber(currentVolume),
		Signal:      signal,
		Description: description,
	}
}

// FormatPriceLevel formats a price for display: grouped with two decimals for
// large prices, four decimals otherwise.
func FormatPriceLevel(price float64) string {
	if price >= 1000 {
		return groupThousands(strconv.FormatFloat(price, 'f', 2, 64))
	}
	return strconv.FormatFloat(price, 'f', 4, 64)
}

// PercentChange returns the percentage change from previous to current.
func PercentChange(current, previous float64) float64 {
	return (current - previous) / previous * 100
}

// formatNumber renders a float with thousands separators and no trailing
// zeros, matching how readings appear in indicator descriptions.
func formatNumber(v float64) string {
	return groupThousands(strconv.FormatFloat(v, 'f', -1, 64))
}

func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
		fracPart = s[i:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	return sign + b.String() + fracPart
}
