package sections

import (
	"regexp"
	"strings"

	"github.com/erizov/jobmatch/internal/types"
)

// Section names a structural part of a resume.
type Section string

// Recognized resume sections.
const (
	SectionSummary    Section = "summary"
	SectionExperience Section = "experience"
	SectionSkills     Section = "skills"
	SectionEducation  Section = "education"
	SectionContact    Section = "contact"
)

// rule binds a section to a heading pattern. Heading detection is a data
// lookup keyed by language, not branching logic inside the extractor.
type rule struct {
	section Section
	pattern *regexp.Regexp
}

var englishRules = []rule{
	{SectionSummary, regexp.MustCompile(`(?i)^(professional summary|executive summary|summary|profile|objective|about me|about)`)},
	{SectionExperience, regexp.MustCompile(`(?i)^(professional experience|work experience|work history|career history|experience|employment)`)},
	{SectionSkills, regexp.MustCompile(`(?i)^(technical skills|core competencies|key skills|professional skills|skills)`)},
	{SectionEducation, regexp.MustCompile(`(?i)^(educational background|academic background|academic qualifications|education|qualifications)`)},
	{SectionContact, regexp.MustCompile(`(?i)^(contact information|personal information|contact)`)},
}

var russianRules = []rule{
	{SectionSummary, regexp.MustCompile(`(?i)^(резюме|профиль|о себе|обо мне)`)},
	{SectionExperience, regexp.MustCompile(`(?i)^(опыт работы|трудовой опыт|места работы|опыт)`)},
	{SectionSkills, regexp.MustCompile(`(?i)^(технические навыки|ключевые навыки|навыки|компетенции)`)},
	{SectionEducation, regexp.MustCompile(`(?i)^(образование|квалификация)`)},
	{SectionContact, regexp.MustCompile(`(?i)^(контактная информация|контакты)`)},
}

// rulesFor returns the ordered heading rules for a language. Unknown
// languages get the union so extraction still degrades gracefully.
func rulesFor(lang types.Language) []rule {
	switch lang {
	case types.LanguageEN:
		return englishRules
	case types.LanguageRU:
		return russianRules
	default:
		combined := make([]rule, 0, len(englishRules)+len(russianRules))
		combined = append(combined, englishRules...)
		combined = append(combined, russianRules...)
		return combined
	}
}

// matchHeading reports whether a line is a section heading. When the heading
// line carries inline content after a colon ("Skills: Python, Docker"), the
// remainder is returned so it is not lost from the section body.
func matchHeading(line string, rules []rule) (Section, string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", "", false
	}
	for _, r := range rules {
		loc := r.pattern.FindStringIndex(trimmed)
		if loc == nil {
			continue
		}
		rest := trimmed[loc[1]:]
		rest = strings.TrimLeft(rest, " \t:–—-")
		// A heading is the keyword alone or the keyword plus an inline
		// payload after a separator. A sentence that merely starts with the
		// keyword ("Experience shows that...") is not a heading.
		sep := trimmed[loc[1]:]
		if rest != "" && !strings.HasPrefix(sep, ":") && !strings.HasPrefix(sep, " -") && !strings.HasPrefix(sep, " –") {
			continue
		}
		return r.section, strings.TrimSpace(rest), true
	}
	return "", "", false
}
