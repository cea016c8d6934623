package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{
			name:     "bare object",
			text:     `{"trend":"BULLISH"}`,
			expected: `{"trend":"BULLISH"}`,
			found:    true,
		},
		{
			name:     "object embedded in prose",
			text:     "Here is my analysis:\n```json\n{\"trend\":\"BEARISH\"}\n```\nGood luck!",
			expected: `{"trend":"BEARISH"}`,
			found:    true,
		},
		{
			name:     "nested objects stay balanced",
			text:     `prefix {"keyLevels":{"support":[1,2]},"trend":"SIDEWAYS"} suffix`,
			expected: `{"keyLevels":{"support":[1,2]},"trend":"SIDEWAYS"}`,
			found:    true,
		},
		{
			name:     "braces inside string values",
			text:     `{"reasoning":"watch the {range} carefully"}`,
			expected: `{"reasoning":"watch the {range} carefully"}`,
			found:    true,
		},
		{
			name:     "escaped quotes inside strings",
			text:     `{"reasoning":"he said \"buy {now}\" loudly"}`,
			expected: `{"reasoning":"he said \"buy {now}\" loudly"}`,
			found:    true,
		},
		{
			name:  "no object at all",
			text:  "the market looks flat today",
			found: false,
		},
		{
			name:  "unterminated object",
			text:  `{"trend":"BULLISH"`,
			found: false,
		},
		{
			name:  "empty input",
			text:  "",
			found: false,
		},
		{
			name:     "first balanced object wins",
			text:     `{"a":1} {"b":2}`,
			expected: `{"a":1}`,
			found:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONObject(tt.text)
			require.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
