package ta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartsight/internal/model"
)

func TestInterpretRSI(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		signal model.Signal
	}{
		{"overbought at boundary", 70, model.SignalSell},
		{"deep overbought", 92.5, model.SignalSell},
		{"just below overbought", 69.99, model.SignalHold},
		{"oversold at boundary", 30, model.SignalBuy},
		{"deep oversold", 12, model.SignalBuy},
		{"just above oversold", 30.01, model.SignalHold},
		{"upward bias at midpoint", 50, model.SignalHold},
		{"upward bias", 65, model.SignalHold},
		{"downward bias", 49.99, model.SignalHold},
		{"downward bias low", 35, model.SignalHold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ind := InterpretRSI(tt.value)
			assert.Equal(t, "RSI", ind.Name)
			assert.Equal(t, tt.signal, ind.Signal)
			assert.NotEmpty(t, ind.Description)
		})
	}
}

func TestInterpretRSISignalsMutuallyExclusive(t *testing.T) {
	for v := 0.0; v <= 100; v += 0.25 {
		ind := InterpretRSI(v)
		require.True(t, ind.Signal.Valid(), "RSI %v produced unknown signal %q", v, ind.Signal)
		if v >= 70 {
			require.Equal(t, model.SignalSell, ind.Signal, "RSI %v", v)
		} else if v <= 30 {
			require.Equal(t, model.SignalBuy, ind.Signal, "RSI %v", v)
		} else {
			require.Equal(t, model.SignalHold, ind.Signal, "RSI %v", v)
		}
	}
}

func TestInterpretMACD(t *testing.T) {
	tests := []struct {
		name      string
		macdLine  float64
		signal    float64
		histogram float64
		expected  model.Signal
	}{
		{"bullish crossover confirmed", 1.0, 0.5, 0.2, model.SignalBuy},
		{"bearish crossover confirmed", 0.2, 0.5, -0.1, model.SignalSell},
		{"crossover without confirmation", 0.6, 0.5, -0.1, model.SignalHold},
		{"below signal with positive histogram", 0.4, 0.5, 0.1, model.SignalHold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ind := InterpretMACD(tt.macdLine, tt.signal, tt.histogram)
			assert.Equal(t, "MACD", ind.Name)
			assert.Equal(t, tt.expected, ind.Signal)
		})
	}
}

func TestInterpretMACDValueFormat(t *testing.T) {
	ind := InterpretMACD(1.23456789, 0.5, 0.2)
	assert.Equal(t, "1.2346", ind.Value)
}

func TestInterpretMovingAverages(t *testing.T) {
	tests := []struct {
		name         string
		price        float64
		ma20, ma200  float64
		ma20Signal   model.Signal
		ma200Signal  model.Signal
	}{
		{"above both", 105, 100, 90, model.SignalBuy, model.SignalBuy},
		{"below both", 95, 100, 110, model.SignalSell, model.SignalSell},
		{"above short below long", 105, 100, 110, model.SignalBuy, model.SignalSell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inds := InterpretMovingAverages(tt.price, tt.ma20, 102, tt.ma200)
			require.Len(t, inds, 2)
			assert.Equal(t, "MA20", inds[0].Name)
			assert.Equal(t, tt.ma20Signal, inds[0].Signal)
			assert.Equal(t, "MA200", inds[1].Name)
			assert.Equal(t, tt.ma200Signal, inds[1].Signal)
		})
	}
}

func TestInterpretBollingerBands(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		expected model.Signal
	}{
		{"tags upper band", 105, model.SignalSell},
		{"at upper band exactly", 104, model.SignalSell},
		{"tags lower band", 85, model.SignalBuy},
		{"at lower band exactly", 90, model.SignalBuy},
		{"above middle", 100, model.SignalHold},
		{"below middle", 95, model.SignalHold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ind := InterpretBollingerBands(tt.price, 104, 90, 98)
			assert.Equal(t, "Bollinger Bands", ind.Name)
			assert.Equal(t, tt.expected, ind.Signal)
		})
	}
}

func TestInterpretBollingerBandsValueFormat(t *testing.T) {
	ind := InterpretBollingerBands(100, 104.5, 90.25, 98)
	assert.Equal(t, "104.50 / 98.00 / 90.25", ind.Value)
}

func TestInterpretVolume(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		average  float64
		expected model.Signal
	}{
		{"spike confirms move", 300, 100, model.SignalBuy},
		{"spike at boundary", 200, 100, model.SignalBuy},
		{"rising interest", 160, 100, model.SignalHold},
		{"rising interest at boundary", 150, 100, model.SignalHold},
		{"lack of interest", 40, 100, model.SignalNeutral},
		{"lack of interest at boundary", 50, 100, model.SignalNeutral},
		{"normal volume", 100, 100, model.SignalNeutral},
		{"just inside the quiet gap", 51, 100, model.SignalNeutral},
		{"just below rising interest", 149, 100, model.SignalNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ind := InterpretVolume(tt.current, tt.average)
			assert.Equal(t, "Volume", ind.Name)
			assert.Equal(t, tt.expected, ind.Signal)
		})
	}
}

func TestInterpretVolumeValueFormat(t *testing.T) {
	ind := InterpretVolume(1234567, 100000)
	assert.Equal(t, "1,234,567", ind.Value)
}

func TestFormatPriceLevel(t *testing.T) {
	tests := []struct {
		price    float64
		expected string
	}{
		{42000, "42,000.00"},
		{1000, "1,000.00"},
		{999.5, "999.5000"},
		{0.4512, "0.4512"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatPriceLevel(tt.price))
	}
}

func TestPercentChange(t *testing.T) {
	assert.InDelta(t, 5.0, PercentChange(105, 100), 1e-9)
	assert.InDelta(t, -10.0, PercentChange(90, 100), 1e-9)
}
