// Package keywords derives ranked keyword sets from resume and job-posting
// text using term frequency weighted by inverse document frequency over a
// fixed reference corpus.
package keywords

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/erizov/jobmatch/internal/types"
)

// minTextLength is the shortest text worth extracting keywords from.
const minTextLength = 10

// Scored is a keyword candidate with its importance score.
type Scored struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// Extract returns up to topK keyword candidates ranked by TF-IDF weight.
// Multi-word technical terms from the curated list are matched first and
// kept as single candidates; remaining text is tokenized into single terms
// with per-language stop words filtered. The result is deterministic: stable
// sort on score, ties broken by first occurrence position.
func Extract(text string, lang types.Language, topK int) []Scored {
	if topK <= 0 || len(strings.TrimSpace(text)) < minTextLength {
		return nil
	}

	lower := strings.ToLower(text)
	sections := splitSections(lower)

	type candidate struct {
		term     string
		count    int
		firstPos int
	}
	var candidates []candidate

	for _, hit := range findPhrases(lower) {
		candidates = append(candidates, candidate(hit))
	}

	counts := make(map[string]int)
	firstPos := make(map[string]int)
	for _, tok := range tokenize(lower) {
		if isStopWord(tok.term, lang) || isNumeric(tok.term) {
			continue
		}
		if _, seen := counts[tok.term]; !seen {
			firstPos[tok.term] = tok.pos
		}
		counts[tok.term]++
	}
	for term, count := range counts {
		candidates = append(candidates, candidate{term: term, count: count, firstPos: firstPos[term]})
	}

	scored := make([]Scored, 0, len(candidates))
	order := make(map[string]int, len(candidates))
	for _, c := range candidates {
		idf, ok := referenceIDF(c.term)
		if !ok {
			idf = sectionIDF(c.term, sections)
		}
		scored = append(scored, Scored{Term: c.term, Score: float64(c.count) * idf})
		order[c.term] = c.firstPos
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return order[scored[i].Term] < order[scored[j].Term]
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}

// Terms returns just the terms of a ranked candidate list, in rank order.
func Terms(scored []Scored) []string {
	terms := make([]string, len(scored))
	for i, s := range scored {
		terms[i] = s.Term
	}
	return terms
}

// FromSkills tokenizes a skills list into individual keywords, preserving
// order and dropping duplicates.
func FromSkills(skills []string) []string {
	var result []string
	seen := make(map[string]bool)
	for _, skill := range skills {
		parts := strings.FieldsFunc(skill, func(r rune) bool {
			return r == ',' || r == '|' || r == ' '
		})
		for _, part := range parts {
			part = strings.TrimSpace(part)
			if part == "" || seen[strings.ToLower(part)] {
				continue
			}
			seen[strings.ToLower(part)] = true
			result = append(result, part)
		}
	}
	return result
}

// ResumeTerms collects the lowercased term set of a resume used for
// overlap matching: whole skill strings, curated phrases found anywhere in
// the raw text, and tokens from skills, summary, experience, and education.
// Order preserves first occurrence; duplicates are dropped.
func ResumeTerms(resume *types.Resume) []string {
	var terms []string
	seen := make(map[string]bool)
	add := func(term string) {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" || seen[term] {
			return
		}
		seen[term] = true
		terms = append(terms, term)
	}

	for _, skill := range resume.Skills {
		add(skill)
	}
	for _, hit := range findPhrases(strings.ToLower(resume.RawText)) {
		add(hit.term)
	}

	var sb strings.Builder
	sb.WriteString(resume.Summary)
	sb.WriteString(" ")
	for _, skill := range resume.Skills {
		sb.WriteString(skill)
		sb.WriteString(" ")
	}
	for _, exp := range resume.Experience {
		sb.WriteString(exp.Title)
		sb.WriteString(" ")
		sb.WriteString(exp.Company)
		sb.WriteString(" ")
		for _, bullet := range exp.Bullets {
			sb.WriteString(bullet)
			sb.WriteString(" ")
		}
	}
	for _, edu := range resume.Education {
		sb.WriteString(edu.Degree)
		sb.WriteString(" ")
		sb.WriteString(edu.Institution)
		sb.WriteString(" ")
	}
	for _, tok := range tokenize(strings.ToLower(sb.String())) {
		if isStopWord(tok.term, resume.Language) || isNumeric(tok.term) {
			continue
		}
		add(tok.term)
	}
	return terms
}

type token struct {
	term string
	pos  int
}

// tokenize splits lowercased text into word tokens of at least three runes.
// Tech suffixes like "c++", "c#", and "node.js" survive because + # . count
// as word characters; trailing dots are trimmed.
func tokenize(lower string) []token {
	var tokens []token
	var word strings.Builder
	start := 0
	flush := func() {
		if word.Len() == 0 {
			return
		}
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if len([]rune(w)) >= 3 || w == "c++" || w == "c#" || w == "go" {
			tokens = append(tokens, token{term: w, pos: start})
		}
	}
	for i, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			if word.Len() == 0 {
				start = i
			}
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// splitSections treats blank-line-separated blocks as pseudo-documents for
// within-document IDF when the reference corpus has no entry for a term.
func splitSections(lower string) []string {
	blocks := strings.Split(lower, "\n\n")
	sections := blocks[:0]
	for _, block := range blocks {
		if strings.TrimSpace(block) != "" {
			sections = append(sections, block)
		}
	}
	if len(sections) == 0 {
		return []string{lower}
	}
	return sections
}

// sectionIDF computes inverse frequency of term across the document's own
// sections. Terms concentrated in one section weigh more than terms spread
// everywhere.
func sectionIDF(term string, sections []string) float64 {
	containing := 0
	for _, section := range sections {
		if strings.Contains(section, term) {
			containing++
		}
	}
	if containing == 0 {
		containing = 1
	}
	return math.Log(float64(len(sections)+1)/float64(containing)) + 1
}

// isNumeric reports whether a token is digits (and separators) only. Bare
// numbers and years are facts, not keywords.
func isNumeric(term string) bool {
	for _, r := range term {
		if unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
