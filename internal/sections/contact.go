package sections

import (
	"regexp"
	"strings"

	"github.com/erizov/jobmatch/internal/types"
)

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`(\+?\d{1,3}[\s.-]?)?\(?\d{3,4}\)?[\s.-]?\d{2,4}[\s.-]?\d{2,4}([\s.-]?\d{2,4})?`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/(?:in|pub)/([\w-]+)`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/([\w-]+)`)
	locationPattern = regexp.MustCompile(`(?i)^(?:location|city|город|адрес)\s*:\s*(.+)$`)
	digitPattern    = regexp.MustCompile(`\d`)
)

// minPhoneDigits keeps the loose phone pattern from matching years and other
// short numbers.
const minPhoneDigits = 7

// hasContactMarkers reports whether the text contains an email or phone hit.
// Contact markers count as structure when deciding whether a resume has any
// recognizable sections at all.
func hasContactMarkers(text string) bool {
	if emailPattern.MatchString(text) {
		return true
	}
	return findPhone(text) != ""
}

// extractContact recovers contact details from anywhere in the resume text.
// Every field is best-effort; absent values stay empty.
func extractContact(text string, lang types.Language) types.Contact {
	contact := types.Contact{
		Email: emailPattern.FindString(text),
		Phone: findPhone(text),
	}

	if m := linkedinPattern.FindStringSubmatch(text); m != nil {
		contact.LinkedIn = "https://linkedin.com/in/" + m[1]
	}
	if m := githubPattern.FindStringSubmatch(text); m != nil {
		contact.GitHub = "https://github.com/" + m[1]
	}

	lines := strings.Split(text, "\n")
	for _, line := range lines {
		if m := locationPattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			contact.Location = strings.TrimSpace(m[1])
			break
		}
	}

	contact.Name = findName(lines, contact.Email, lang)
	return contact
}

var yearRangeOnly = regexp.MustCompile(`^(19|20)\d{2}\s*[-–—]\s*(19|20)\d{2}$`)

// findPhone returns the first phone-shaped token with enough digits.
// Year ranges ("2013-2019") satisfy the loose pattern and are skipped.
func findPhone(text string) string {
	for _, candidate := range phonePattern.FindAllString(text, 10) {
		candidate = strings.TrimSpace(candidate)
		if yearRangeOnly.MatchString(candidate) {
			continue
		}
		if len(digitPattern.FindAllString(candidate, -1)) >= minPhoneDigits {
			return candidate
		}
	}
	return ""
}

// findName picks the candidate name from the first substantial lines: two to
// four words, digit-free, no bullet glyph, no colon, and not a section
// heading.
func findName(lines []string, email string, lang types.Language) string {
	rules := rulesFor(lang)
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if email != "" && strings.Contains(line, email) {
			continue
		}
		if _, _, isHeading := matchHeading(line, rules); isHeading {
			continue
		}
		if strings.ContainsAny(line, ":@") || digitPattern.MatchString(line) {
			continue
		}
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") ||
			strings.HasPrefix(line, "*") || strings.HasPrefix(line, "#") {
			continue
		}
		words := strings.Fields(line)
		if len(words) >= 2 && len(words) <= 4 {
			return line
		}
	}
	return ""
}
