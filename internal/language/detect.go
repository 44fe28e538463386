// Package language identifies the language of a text blob as English,
// Russian, or unknown, using a statistical trigram classifier with a
// character-block fallback for short or code-mixed fragments.
package language

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/RadhiFadlillah/whatlanggo"

	"github.com/erizov/jobmatch/internal/types"
)

// ErrInsufficientText is returned when the input is too short to classify
// reliably. Callers should fall back to language-neutral rules and proceed.
var ErrInsufficientText = fmt.Errorf("text too short for language detection")

// Options configures the two detection tiers. The zero value is not usable;
// start from DefaultOptions. Both thresholds are exposed so tests can
// exercise each tier independently.
type Options struct {
	// MinTextLength is the minimum number of characters (after trimming)
	// required to attempt detection.
	MinTextLength int
	// ConfidenceThreshold is the minimum classifier confidence to accept
	// the statistical result before falling back to the Cyrillic-ratio
	// heuristic.
	ConfidenceThreshold float64
	// CyrillicRatio is the fraction of Cyrillic letters among all letters
	// above which the fallback classifies text as Russian.
	CyrillicRatio float64
}

// DefaultOptions returns the standard detection thresholds.
func DefaultOptions() Options {
	return Options{
		MinTextLength:       20,
		ConfidenceThreshold: 0.6,
		CyrillicRatio:       0.3,
	}
}

// whitelist restricts the statistical classifier to the supported set.
var whitelist = map[whatlanggo.Lang]bool{
	whatlanggo.Eng: true,
	whatlanggo.Rus: true,
}

// Detect classifies text as English or Russian and reports the classifier
// confidence. Text shorter than opts.MinTextLength yields LanguageUnknown
// and ErrInsufficientText. Detect is pure and never panics.
func Detect(text string, opts Options) (types.Language, float64, error) {
	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) < opts.MinTextLength {
		return types.LanguageUnknown, 0, ErrInsufficientText
	}

	info := whatlanggo.DetectWithOptions(trimmed, whatlanggo.Options{Whitelist: whitelist})
	confidence := info.Confidence

	if confidence >= opts.ConfidenceThreshold {
		switch info.Lang {
		case whatlanggo.Rus:
			return types.LanguageRU, confidence, nil
		case whatlanggo.Eng:
			return types.LanguageEN, confidence, nil
		}
	}

	// Short or code-mixed fragments (names, emails, skill lists) routinely
	// defeat statistical classifiers; the character-block ratio is a
	// deterministic safety net.
	return detectByScript(trimmed, opts.CyrillicRatio), confidence, nil
}

// detectByScript classifies by the fraction of Cyrillic letters among all
// letters in the text.
func detectByScript(text string, cyrillicRatio float64) types.Language {
	cyrillic, letters := 0, 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.Is(unicode.Cyrillic, r) {
			cyrillic++
		}
	}
	if letters == 0 {
		return types.LanguageEN
	}
	if float64(cyrillic)/float64(letters) > cyrillicRatio {
		return types.LanguageRU
	}
	return types.LanguageEN
}

// DecideOutputLanguage picks the language a generated document should use.
// When the resume and posting disagree, the posting language wins unless
// preferJob is false. A side the detector could not place never wins: it
// falls to the other side, and English is the last resort.
func DecideOutputLanguage(resumeLang, jobLang types.Language, preferJob bool) types.Language {
	if resumeLang == types.LanguageUnknown {
		resumeLang = jobLang
	}
	if jobLang == types.LanguageUnknown {
		jobLang = resumeLang
	}
	if resumeLang == types.LanguageUnknown {
		return types.LanguageEN
	}
	if resumeLang == jobLang {
		return resumeLang
	}
	if preferJob {
		return jobLang
	}
	return resumeLang
}
