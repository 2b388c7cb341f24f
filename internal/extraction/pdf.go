package extraction

import (
	"regexp"
	"strings"
)

// streamPattern matches PDF content stream bodies. Scanning stream markers is
// a lossy stand-in for a real PDF text-layer decode; it recovers whatever
// readable fragments happen to sit uncompressed in the file.
var streamPattern = regexp.MustCompile(`(?s)stream\s*(.*?)\s*endstream`)

// extractPDF pulls best-effort text out of PDF bytes by scanning content
// stream markers. A PDF without any stream markers fails with ExtractionError.
func extractPDF(data []byte) (string, error) {
	matches := streamPattern.FindAllString(string(data), -1)
	if len(matches) == 0 {
		return "", &ExtractionError{
			Kind:    KindPDF,
			Message: "no content streams found; try a Word document instead",
		}
	}

	text := strings.Join(matches, " ")
	text = stripNonResumeRunes(text)
	text = collapseWhitespace(text)
	return text, nil
}

// stripNonResumeRunes replaces everything outside word characters, whitespace
// and the @ . - set (kept so emails and phone numbers survive) with spaces.
func stripNonResumeRunes(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == '_', r == '@', r == '.', r == '-':
			sb.WriteRune(r)
		case r == '\n':
			sb.WriteRune('\n')
		default:
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

var multiSpacePattern = regexp.MustCompile(`[ \t]+`)

// collapseWhitespace normalizes runs of spaces and tabs to single spaces
// while keeping line structure intact for the section segmenter.
func collapseWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(multiSpacePattern.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
