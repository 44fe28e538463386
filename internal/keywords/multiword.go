package keywords

import "strings"

// multiWordTerms is the curated list of technical phrases that must survive
// tokenization as single candidate terms. Matched case-insensitively before
// single-token extraction.
var multiWordTerms = []string{
	"machine learning",
	"deep learning",
	"data science",
	"data engineering",
	"data analysis",
	"natural language processing",
	"computer vision",
	"software engineering",
	"software development",
	"project management",
	"product management",
	"continuous integration",
	"continuous delivery",
	"unit testing",
	"integration testing",
	"distributed systems",
	"system design",
	"cloud computing",
	"web development",
	"rest api",
	"ci cd",
	"version control",
	"agile development",
	"team leadership",
	"problem solving",
	"машинное обучение",
	"анализ данных",
	"управление проектами",
	"разработка по",
	"базы данных",
	"командная работа",
}

// findPhrases returns the curated phrases present in the lowercased text,
// in curated-list order, with their occurrence counts and the byte offset
// of their first occurrence.
func findPhrases(lowerText string) []phraseHit {
	var hits []phraseHit
	for _, phrase := range multiWordTerms {
		first := strings.Index(lowerText, phrase)
		if first < 0 {
			continue
		}
		hits = append(hits, phraseHit{
			term:     phrase,
			count:    strings.Count(lowerText, phrase),
			firstPos: first,
		})
	}
	return hits
}

type phraseHit struct {
	term     string
	count    int
	firstPos int
}
