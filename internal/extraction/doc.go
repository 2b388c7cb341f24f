package extraction

import (
	"strings"
	"unicode/utf8"
)

// extractDOC decodes legacy binary Word files with a lossy character
// fallback: invalid byte sequences are dropped, non-printable runes are
// stripped, and whatever readable text remains is returned.
func extractDOC(data []byte) (string, error) {
	var sb strings.Builder
	sb.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		if r == utf8.RuneError && size == 1 {
			continue
		}
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			sb.WriteRune('\n')
		case r >= 32 && r != 127:
			sb.WriteRune(r)
		}
	}

	text := collapseWhitespace(stripNonResumeRunes(sb.String()))
	if text == "" {
		return "", &ExtractionError{Kind: KindDOC, Message: "document contains no readable text"}
	}
	return text, nil
}
