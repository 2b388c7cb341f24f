package parsing

import (
	"regexp"
	"strings"

	"github.com/jobflow/jobflow/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	// North-American style numbers; international formats fall through unset.
	phonePattern = regexp.MustCompile(`(\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)
	namePattern  = regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+`)
)

// maxNameLineLength caps how long a line can be and still count as a name.
const maxNameLineLength = 50

// nameScanLines is how many leading non-empty lines are checked for a name.
const nameScanLines = 5

// ExtractContact pulls email, phone, and name out of resume text. Every field
// is first-match-wins and may be left empty; extraction never fails.
func ExtractContact(text string) types.Contact {
	var contact types.Contact

	if email := emailPattern.FindString(text); email != "" {
		contact.Email = email
	}
	if phone := phonePattern.FindString(text); phone != "" {
		contact.Phone = phone
	}
	contact.Name = extractName(text)

	return contact
}

// extractName looks for a "Capitalized Capitalized" pair in the first few
// non-empty lines, skipping anything that looks like an email address.
func extractName(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
		if len(lines) == nameScanLines {
			break
		}
	}

	for _, line := range lines {
		if len(line) < maxNameLineLength && !strings.Contains(line, "@") && namePattern.MatchString(line) {
			return line
		}
	}
	return ""
}
