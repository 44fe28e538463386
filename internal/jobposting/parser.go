// Package jobposting converts raw job-posting text into a structured
// JobPosting: title, company, requirement and responsibility lists, and
// tiered keywords.
package jobposting

import (
	"regexp"
	"strings"

	"github.com/erizov/jobmatch/internal/keywords"
	"github.com/erizov/jobmatch/internal/types"
)

// DefaultTopKeywords is how many ranked keyword candidates a posting keeps
// unless the caller overrides it.
const DefaultTopKeywords = 30

// Options tunes parsing. Zero values mean defaults; non-empty Title and
// Company are pre-split fields from a known site's markup and win over the
// text heuristics.
type Options struct {
	Title       string
	Company     string
	TopKeywords int
}

var (
	titleLabelPattern    = regexp.MustCompile(`(?i)^(?:position|job title|title|role|должность|вакансия)\s*:\s*(.+)$`)
	companyLabelPattern  = regexp.MustCompile(`(?i)^(?:company|employer|organization|компания|работодатель)\s*:\s*(.+)$`)
	locationLabelPattern = regexp.MustCompile(`(?i)^(?:location|city|город|место работы)\s*:\s*(.+)$`)

	requirementHeaders    = regexp.MustCompile(`(?i)^(requirements|qualifications|must have|what we require|требования|мы ожидаем)`)
	responsibilityHeaders = regexp.MustCompile(`(?i)^(responsibilities|duties|what you.ll do|key responsibilities|обязанности|задачи)`)
	otherSectionHeaders   = regexp.MustCompile(`(?i)^(benefits|conditions|about us|about the company|we offer|условия|о компании|о нас|мы предлагаем)`)

	skipTitlePatterns = regexp.MustCompile(`(?i)^(обязанности|требования|условия|responsibilities|requirements|qualifications|компания|company|employer|зарплата|salary|compensation|опыт|experience|location|город)`)

	bulletMarker      = regexp.MustCompile(`^([-•*·—]|\d+[.)])\s*`)
	sentenceLine      = regexp.MustCompile(`[.!?]\s*$`)
	headingSeparators = regexp.MustCompile(`\s*[:–—-]?\s*$`)
)

// Parse converts plain job-posting text into a JobPosting. It never fails:
// missing structure degrades to empty fields, and a posting with no section
// headers at all treats every bulleted or sentence-terminated line as a
// requirement.
func Parse(rawText string, lang types.Language) types.JobPosting {
	return ParseWithOptions(rawText, lang, Options{})
}

// ParsePrefilled is Parse with pre-split title and company fields, for
// postings sourced from a known site's markup where the fetch layer already
// recovered them.
func ParsePrefilled(rawText, title, company string, lang types.Language) types.JobPosting {
	return ParseWithOptions(rawText, lang, Options{Title: title, Company: company})
}

// ParseWithOptions is the fully configurable parse.
func ParseWithOptions(rawText string, lang types.Language, opts Options) types.JobPosting {
	if opts.TopKeywords <= 0 {
		opts.TopKeywords = DefaultTopKeywords
	}
	text := strings.ReplaceAll(rawText, "\r\n", "\n")

	job := types.JobPosting{
		Language: lang,
		RawText:  rawText,
	}

	requirements, responsibilities, foundHeaders := extractSections(text)
	if !foundHeaders {
		requirements = fallbackRequirements(text)
	}
	job.Requirements = requirements
	job.Responsibilities = responsibilities

	job.Title = opts.Title
	if job.Title == "" {
		job.Title = extractTitle(text)
	}
	job.Company = opts.Company
	if job.Company == "" {
		job.Company = extractLabeled(text, companyLabelPattern)
	}
	job.Location = extractLabeled(text, locationLabelPattern)

	job.Keywords = ClassifyTiers(candidateTerms(text, lang, requirements, opts.TopKeywords), requirements, text)
	return job
}

// extractTitle picks the job title: a labeled line wins, otherwise the first
// substantial line that is not a bullet or a section header.
func extractTitle(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 20 {
		lines = lines[:20]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || skipTitlePatterns.MatchString(line) {
			continue
		}
		if m := titleLabelPattern.FindStringSubmatch(line); m != nil {
			if title := strings.TrimSpace(m[1]); len(title) > 3 {
				return title
			}
		}
		if len(line) > 5 && len(line) < 80 && !bulletMarker.MatchString(line) {
			return line
		}
	}
	return ""
}

// extractLabeled returns the first value of a labeled line ("Company: X").
func extractLabeled(text string, pattern *regexp.Regexp) string {
	for _, line := range strings.Split(text, "\n") {
		if m := pattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// extractSections walks the posting and collects requirement and
// responsibility items under their respective headers. Any other recognized
// header ends the current section.
func extractSections(text string) (requirements, responsibilities []string, foundHeaders bool) {
	const (
		sectionNone = iota
		sectionRequirements
		sectionResponsibilities
	)
	current := sectionNone
	itemsInCurrent := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			// A blank line after collected items ends the section; trailing
			// prose should not be claimed as a requirement. A blank line
			// directly after the header does not.
			if itemsInCurrent > 0 {
				current = sectionNone
			}
			continue
		}
		stripped := headingSeparators.ReplaceAllString(line, "")
		switch {
		case requirementHeaders.MatchString(stripped):
			current = sectionRequirements
			itemsInCurrent = 0
			foundHeaders = true
			continue
		case responsibilityHeaders.MatchString(stripped):
			current = sectionResponsibilities
			itemsInCurrent = 0
			foundHeaders = true
			continue
		case otherSectionHeaders.MatchString(stripped):
			current = sectionNone
			continue
		}

		item := strings.TrimSpace(bulletMarker.ReplaceAllString(line, ""))
		if item == "" {
			continue
		}
		switch current {
		case sectionRequirements:
			requirements = append(requirements, item)
			itemsInCurrent++
		case sectionResponsibilities:
			responsibilities = append(responsibilities, item)
			itemsInCurrent++
		}
	}
	return requirements, responsibilities, foundHeaders
}

// fallbackRequirements treats every bulleted or sentence-terminated line as
// a requirement when the posting has no recognizable section headers.
func fallbackRequirements(text string) []string {
	var requirements []string
	titleSeen := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !titleSeen {
			// The first non-empty line is the presumed title, not a
			// requirement.
			titleSeen = true
			continue
		}
		if bulletMarker.MatchString(line) || sentenceLine.MatchString(line) {
			if item := strings.TrimSpace(bulletMarker.ReplaceAllString(line, "")); item != "" {
				requirements = append(requirements, item)
			}
		}
	}
	return requirements
}

// candidateTerms merges ranked keywords from the extraction engine with
// short requirement items, which are keyword-shaped facts in their own
// right ("5+ years experience"). Order preserves extraction rank; duplicates
// are dropped case-insensitively.
func candidateTerms(text string, lang types.Language, requirements []string, topK int) []string {
	var terms []string
	seen := make(map[string]bool)
	add := func(term string) {
		term = strings.ToLower(strings.TrimSpace(strings.TrimRight(term, ".;:")))
		if term == "" || seen[term] {
			return
		}
		seen[term] = true
		terms = append(terms, term)
	}

	for _, item := range requirements {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); len(strings.Fields(part)) <= 4 {
				add(part)
			}
		}
	}
	for _, scored := range keywords.Extract(text, lang, topK) {
		add(scored.Term)
	}
	return terms
}
