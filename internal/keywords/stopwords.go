package keywords

import "github.com/erizov/jobmatch/internal/types"

// englishStopWords filters common English words that add noise to keyword
// extraction.
var englishStopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"use": true, "using": true, "used": true, "well": true, "such": true,
	"per": true, "etc": true, "any": true, "other": true, "most": true,
	"may": true, "should": true, "must": true, "would": true, "could": true,
	"when": true, "where": true, "while": true, "both": true, "some": true,
}

// russianStopWords filters common Russian words.
var russianStopWords = map[string]bool{
	"и": true, "в": true, "на": true, "с": true, "по": true,
	"не": true, "для": true, "от": true, "до": true, "из": true,
	"или": true, "как": true, "что": true, "это": true, "его": true,
	"мы": true, "вы": true, "вам": true, "нам": true, "наш": true,
	"ваш": true, "свой": true, "быть": true, "есть": true, "был": true,
	"при": true, "под": true, "над": true, "также": true, "более": true,
	"будет": true, "если": true, "чтобы": true, "который": true,
	"которые": true, "можно": true, "нужно": true, "очень": true,
	"все": true, "всех": true, "том": true, "тем": true, "так": true,
}

// isStopWord reports whether term is a stop word for the given language.
// For unknown languages both lists apply (language-neutral filtering).
func isStopWord(term string, lang types.Language) bool {
	switch lang {
	case types.LanguageEN:
		return englishStopWords[term]
	case types.LanguageRU:
		return russianStopWords[term]
	default:
		return englishStopWords[term] || russianStopWords[term]
	}
}
