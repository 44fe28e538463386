// Package facts builds a ledger of atomic facts from a resume and checks
// rewritten text against it. The check is syntactic: it cannot prove a
// rewrite is truthful, only that it introduces no fact-shaped token absent
// from the source.
package facts

import (
	"regexp"
	"strings"

	"github.com/erizov/jobmatch/internal/types"
)

var (
	// dateRangePattern matches year-to-year ranges with optional month
	// prefixes, including Russian month names and open-ended ranges.
	dateRangePattern = regexp.MustCompile(`(?i)(?:(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?|январ[ья]|феврал[ья]|марта?|апрел[ья]|ма[йя]|июн[ья]|июл[ья]|августа?|сентябр[ья]|октябр[ья]|ноябр[ья]|декабр[ья])\.?\s+)?(?:19|20)\d{2}\s*[—–-]\s*(?:(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?|январ[ья]|феврал[ья]|марта?|апрел[ья]|ма[йя]|июн[ья]|июл[ья]|августа?|сентябр[ья]|октябр[ья]|ноябр[ья]|декабр[ья])\.?\s+)?(?:(?:19|20)\d{2}|present|current|наст(?:оящее время)?\.?|н\.\s?в\.)`)

	// metricPattern matches numeric and percentage tokens together with an
	// optional unit word so "5 years" and "5 clients" stay distinct facts.
	metricPattern = regexp.MustCompile(`(?i)[$€₽£]?\d+(?:[.,]\d+)?\s*(?:%|\+|x|раз|years?|год(?:а|ов)?|лет|million|billion|mln|млн|тыс\.?|k\b|m\b)?`)

	// orgNamePattern matches capitalized multi-word sequences resembling
	// organization names. Word gaps are spaces only so sequences never span
	// line breaks.
	orgNamePattern = regexp.MustCompile(`[A-ZА-ЯЁ][a-zа-яёA-ZА-ЯЁ&.'-]*(?:[ \t]+[A-ZА-ЯЁ][a-zа-яёA-ZА-ЯЁ&.'-]*)+`)

	dashVariants       = strings.NewReplacer("—", "-", "–", "-")
	whitespaceCollapse = regexp.MustCompile(`\s+`)
	spacedDash         = regexp.MustCompile(`\s*-\s*`)
)

// BuildLedger scans a resume for employer names, date ranges, and numeric
// metrics. Experience company fields are added explicitly; everything else
// comes from a pattern scan over the raw text, so any fact-shaped token in
// the source is guaranteed to be in the ledger.
func BuildLedger(resume *types.Resume) types.FactLedger {
	ledger := types.NewFactLedger()

	for _, entry := range resume.Experience {
		if entry.Company != "" {
			ledger.Companies[normalizeFact(entry.Company)] = struct{}{}
		}
	}

	addFacts(ledger, resume.RawText)
	return ledger
}

// ScanText builds a ledger from arbitrary text, for example a job posting
// whose facts a cover letter may legitimately cite.
func ScanText(text string) types.FactLedger {
	ledger := types.NewFactLedger()
	addFacts(ledger, text)
	return ledger
}

func addFacts(ledger types.FactLedger, text string) {
	for _, fact := range scanFacts(text) {
		switch fact.kind {
		case factCompany:
			ledger.Companies[normalizeFact(fact.text)] = struct{}{}
		case factDateRange:
			ledger.DateRanges[normalizeFact(fact.text)] = struct{}{}
		case factMetric:
			ledger.Metrics[normalizeFact(fact.text)] = struct{}{}
		}
	}
}

type factKind int

const (
	factCompany factKind = iota
	factDateRange
	factMetric
)

type fact struct {
	kind factKind
	text string
	pos  int
}

// scanFacts extracts every fact-shaped token from text in order of
// appearance. Date ranges are masked out before the metric pass so the
// years inside a range are not double-counted as standalone metrics.
func scanFacts(text string) []fact {
	var found []fact

	for _, loc := range dateRangePattern.FindAllStringIndex(text, -1) {
		found = append(found, fact{kind: factDateRange, text: text[loc[0]:loc[1]], pos: loc[0]})
	}
	masked := dateRangePattern.ReplaceAllStringFunc(text, func(m string) string {
		return strings.Repeat(" ", len(m))
	})
	for _, loc := range metricPattern.FindAllStringIndex(masked, -1) {
		found = append(found, fact{kind: factMetric, text: masked[loc[0]:loc[1]], pos: loc[0]})
	}
	for _, loc := range orgNamePattern.FindAllStringIndex(text, -1) {
		found = append(found, fact{kind: factCompany, text: text[loc[0]:loc[1]], pos: loc[0]})
	}
	return found
}

// normalizeFact lowercases, collapses whitespace, unifies dash variants,
// and strips trailing punctuation so "2018 — 2022" and "2018-2022" compare
// equal.
func normalizeFact(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = dashVariants.Replace(s)
	s = whitespaceCollapse.ReplaceAllString(s, " ")
	s = spacedDash.ReplaceAllString(s, "-")
	return strings.TrimRight(s, ".,;:")
}
