package vision

// BuildPrompt returns the analysis prompt for the requested language.
// Anything other than "en" falls back to Thai, the service default.
func BuildPrompt(language string) string {
	if language == "en" {
		return promptEN
	}
	return promptTH
}

const promptEN = `Analyze this crypto chart image in detail. Identify:

1. Main trend (Bullish/Bearish/Sideways) with confidence level (0-100%)
2. Key support and resistance levels
3. Technical indicators visible in the chart:
   - RSI: overbought/oversold levels (>70 = overbought, <30 = oversold)
   - MACD: signal line crossovers
   - Moving Averages: MA20, MA50, MA200
   - Bollinger Bands: volatility analysis
   - Volume: trading volume analysis
   - Candlestick Patterns: pattern recognition

4. Entry points with Stop Loss and Take Profit levels
5. Trading recommendation (BUY/SELL/HOLD) with reasoning

Please respond in JSON format:
` + jsonShape

const promptTH = `วิเคราะห์กราฟ Crypto ภาพนี้ให้ละเอียด โดยระบุ:

1. แนวโน้มหลัก (Bullish/Bearish/Sideways) พร้อมระดับความมั่นใจ (0-100%)
2. แนวรับ (Support) และแนวต้าน (Resistance) ที่สำคัญ
3. Technical Indicators ที่เห็นในกราฟ เช่น:
   - RSI: หา overbought/oversold (>70 = overbought, <30 = oversold)
   - MACD: สัญญาณตัดเส้น
   - Moving Average: MA20, MA50, MA200
   - Bollinger Bands: ความผันผวน
   - Volume: ปริมาณการซื้อขาย
   - Candlestick Pattern: รูปแบบเทียน

4. จุดเข้าซื้อขาย (Entry Point) พร้อม Stop Loss และ Take Profit
5. คำแนะนำการซื้อขาย (BUY/SELL/HOLD) พร้อมเหตุผล

กรุณาตอบเป็นรูปแบบ JSON ดังนี้:
` + jsonShape

const jsonShape = `{
  "trend": "BULLISH|BEARISH|SIDEWAYS",
  "confidence": 85,
  "keyLevels": {
    "support": [42000, 41500],
    "resistance": [45000, 46000]
  },
  "indicators": [
    {
      "name": "RSI",
      "value": "45",
      "signal": "NEUTRAL",
      "description": "RSI at 45 indicates neutral market conditions"
    }
  ],
  "recommendation": {
    "action": "BUY",
    "entryPoint": 43000,
    "stopLoss": 41800,
    "takeProfit": 46500,
    "reasoning": "Reason for recommendation"
  }
}`
