package analysis

import "strings"

// ExtractJSONObject returns the first balanced {...} substring of text.
// The scanner tracks string literals and escape sequences so braces inside
// quoted values do not throw off the balance. A missing or unterminated
// object is reported through ok, not an error; the caller degrades to the
// default analysis.
func ExtractJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}
