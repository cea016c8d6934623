package vision

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	en := BuildPrompt("en")
	th := BuildPrompt("th")

	assert.NotEqual(t, en, th)
	assert.True(t, strings.Contains(en, `"trend": "BULLISH|BEARISH|SIDEWAYS"`))
	assert.True(t, strings.Contains(th, `"trend": "BULLISH|BEARISH|SIDEWAYS"`))

	// Unknown selectors fall back to the default language.
	assert.Equal(t, th, BuildPrompt("fr"))
	assert.Equal(t, th, BuildPrompt(""))
}

func TestEncodeDataURL(t *testing.T) {
	url := EncodeDataURL("image/png", []byte{1, 2, 3})
	assert.Equal(t, "data:image/png;base64,AQID", url)
}
