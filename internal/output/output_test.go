package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erizov/jobmatch/internal/types"
)

func renderableResume(lang types.Language) *types.Resume {
	return &types.Resume{
		Contact: types.Contact{
			Name:  "John Doe",
			Email: "john@example.com",
			Phone: "+1 555 123 4567",
		},
		Summary: "Backend engineer focused on billing systems.",
		Experience: []types.ExperienceEntry{
			{
				Title:   "Backend Engineer",
				Company: "Acme Corp",
				Dates:   "2018-2022",
				Bullets: []string{"Built the billing service"},
			},
		},
		Skills:    []string{"Go", "PostgreSQL"},
		Education: []types.EducationEntry{{Degree: "BSc Computer Science", Institution: "MIT", Dates: "2014-2018"}},
		Language:  lang,
		RawText:   "raw",
	}
}

func TestText_EnglishHeaders(t *testing.T) {
	text := Text(renderableResume(types.LanguageEN))

	assert.Contains(t, text, "John Doe\n")
	assert.Contains(t, text, "john@example.com | +1 555 123 4567")
	assert.Contains(t, text, "PROFESSIONAL SUMMARY")
	assert.Contains(t, text, "EXPERIENCE")
	assert.Contains(t, text, "Backend Engineer — Acme Corp (2018-2022)")
	assert.Contains(t, text, "- Built the billing service")
	assert.Contains(t, text, "SKILLS\nGo, PostgreSQL")
	assert.Contains(t, text, "BSc Computer Science, MIT (2014-2018)")
}

func TestText_RussianHeaders(t *testing.T) {
	text := Text(renderableResume(types.LanguageRU))

	assert.Contains(t, text, strings.ToUpper("Опыт работы"))
	assert.Contains(t, text, strings.ToUpper("Навыки"))
	assert.NotContains(t, text, "EXPERIENCE")
}

func TestText_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	text := Text(renderableResume(types.LanguageUnknown))

	assert.Contains(t, text, "EXPERIENCE")
}

func TestText_OmitsEmptySections(t *testing.T) {
	resume := &types.Resume{Summary: "Just a summary.", Language: types.LanguageEN, RawText: "raw"}

	text := Text(resume)

	assert.Contains(t, text, "PROFESSIONAL SUMMARY")
	assert.NotContains(t, text, "EXPERIENCE")
	assert.NotContains(t, text, "SKILLS")
}

func TestMarkdown(t *testing.T) {
	md := Markdown(renderableResume(types.LanguageEN))

	assert.Contains(t, md, "# John Doe")
	assert.Contains(t, md, "## Professional Summary")
	assert.Contains(t, md, "### Backend Engineer — Acme Corp (2018-2022)")
	assert.Contains(t, md, "- Built the billing service")
	assert.Contains(t, md, "## Skills\nGo, PostgreSQL")
}

func TestReport(t *testing.T) {
	result := types.MatchResult{
		ATSScore:        72.5,
		OverlapKeywords: []string{"python"},
		MissingKeywords: []string{"kubernetes", "aws"},
		MustHaveMissing: []string{"kubernetes"},
		Recommendations: []string{"Add missing must-have keyword \"kubernetes\" to your skills section"},
	}

	report := Report(result, []string{"summary rewrite discarded, unverified facts: 2015-2022"})

	assert.Contains(t, report, "**ATS score: 72.5 / 100**")
	assert.Contains(t, report, "- kubernetes (must have)")
	assert.Contains(t, report, "- aws\n")
	assert.Contains(t, report, "1. Add missing must-have keyword")
	assert.Contains(t, report, "## Warnings")
	assert.Contains(t, report, "2015-2022")
}

func TestOptimizeReport(t *testing.T) {
	result := types.MatchResult{ATSScore: 40}

	report := OptimizeReport(result, 55, nil)

	assert.Contains(t, report, "**ATS score: 40.0 / 100**")
	assert.Contains(t, report, "**ATS score after rewrite: 55.0 / 100 (+15.0)**")
}

func TestReport_EmptyKeywords(t *testing.T) {
	report := Report(types.MatchResult{ATSScore: 20}, nil)

	assert.Contains(t, report, "ATS score: 20.0")
	assert.NotContains(t, report, "## Missing keywords")
	assert.NotContains(t, report, "## Warnings")
}
