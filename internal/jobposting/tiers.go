package jobposting

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/erizov/jobmatch/internal/types"
)

// ClassifyTiers assigns a tier to every candidate term. A term is must-have
// when it appears in a requirements block or occurs more than once in the
// posting text; otherwise it is nice-to-have. This single rule is the sole
// tie-break for tier assignment.
func ClassifyTiers(terms []string, requirements []string, postingText string) []types.Keyword {
	reqText := strings.ToLower(strings.Join(requirements, " "))
	lowerText := strings.ToLower(postingText)

	classified := make([]types.Keyword, 0, len(terms))
	for _, term := range terms {
		tier := types.TierNiceToHave
		if countTerm(reqText, term) > 0 || countTerm(lowerText, term) > 1 {
			tier = types.TierMustHave
		}
		classified = append(classified, types.Keyword{Term: term, Tier: tier})
	}
	return classified
}

// countTerm counts whole-word occurrences of term in text, so "go" inside
// "google" and "java" inside "javascript" do not count. Boundaries are
// checked on runes rather than regexp's \b, which is ASCII-only and breaks
// on Cyrillic text.
func countTerm(text, term string) int {
	if term == "" {
		return 0
	}
	count := 0
	for i := 0; ; {
		j := strings.Index(text[i:], term)
		if j < 0 {
			return count
		}
		start := i + j
		end := start + len(term)
		if !wordRuneBefore(text, start) && !wordRuneAfter(text, end) {
			count++
		}
		i = start + 1
	}
}

func wordRuneBefore(text string, pos int) bool {
	if pos == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(text[:pos])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func wordRuneAfter(text string, pos int) bool {
	if pos >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
