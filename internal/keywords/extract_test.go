package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erizov/jobmatch/internal/types"
)

const jobText = `Senior Backend Engineer

Requirements:
- Python and Go in production
- Kubernetes cluster administration
- Machine learning pipelines

Responsibilities:
- Design backend services
- Mentor junior engineers`

func TestExtract_RanksTechnicalTermsAboveGenericWords(t *testing.T) {
	scored := Extract(jobText, types.LanguageEN, 20)
	require.NotEmpty(t, scored)

	terms := Terms(scored)
	assert.Contains(t, terms, "python")
	assert.Contains(t, terms, "kubernetes")
	assert.Contains(t, terms, "machine learning")

	// "requirements" is near-universal vocabulary and must rank below the
	// technical terms even though it appears in the text.
	rank := func(term string) int {
		for i, s := range terms {
			if s == term {
				return i
			}
		}
		return len(terms)
	}
	assert.Less(t, rank("kubernetes"), rank("requirements"))
}

func TestExtract_PreservesMultiWordTerms(t *testing.T) {
	terms := Terms(Extract("We need machine learning and deep learning expertise.", types.LanguageEN, 10))

	assert.Contains(t, terms, "machine learning")
	assert.Contains(t, terms, "deep learning")
}

func TestExtract_Deterministic(t *testing.T) {
	first := Extract(jobText, types.LanguageEN, 15)
	for range 5 {
		assert.Equal(t, first, Extract(jobText, types.LanguageEN, 15))
	}
}

func TestExtract_FiltersStopWordsPerLanguage(t *testing.T) {
	terms := Terms(Extract("Работа в команде и знание Python для разработки сервисов", types.LanguageRU, 20))

	assert.Contains(t, terms, "python")
	assert.NotContains(t, terms, "для")
}

func TestExtract_ShortTextReturnsNothing(t *testing.T) {
	assert.Nil(t, Extract("short", types.LanguageEN, 10))
	assert.Nil(t, Extract("", types.LanguageEN, 10))
}

func TestExtract_TopKLimit(t *testing.T) {
	scored := Extract(jobText, types.LanguageEN, 3)
	assert.Len(t, scored, 3)
}

func TestFromSkills(t *testing.T) {
	skills := []string{"Python, Docker", "AWS | Terraform", "Python"}

	assert.Equal(t, []string{"Python", "Docker", "AWS", "Terraform"}, FromSkills(skills))
}

func TestResumeTerms_IncludesSkillsAndExperience(t *testing.T) {
	resume := &types.Resume{
		Summary: "Backend engineer focused on reliability",
		Skills:  []string{"Python", "Docker"},
		Experience: []types.ExperienceEntry{
			{Title: "Software Engineer", Company: "Acme Corp", Bullets: []string{"Built Kafka pipelines"}},
		},
		Language: types.LanguageEN,
		RawText:  "Backend engineer. Machine learning side projects. Skills: Python, Docker",
	}

	terms := ResumeTerms(resume)

	assert.Contains(t, terms, "python")
	assert.Contains(t, terms, "docker")
	assert.Contains(t, terms, "kafka")
	assert.Contains(t, terms, "machine learning")
	// Whole skill strings come first, lowercased, without duplicates.
	assert.Equal(t, "python", terms[0])
}
