package jobposting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erizov/jobmatch/internal/types"
)

const englishPosting = `Senior Backend Engineer
Company: Initech

Requirements:
- Python, 5+ years experience, Leadership
- Kubernetes in production

Responsibilities:
- Design and operate backend services
- Mentor the team

We also use Docker occasionally for local development.`

func TestParse_EnglishPosting(t *testing.T) {
	job := Parse(englishPosting, types.LanguageEN)

	assert.Equal(t, "Senior Backend Engineer", job.Title)
	assert.Equal(t, "Initech", job.Company)
	require.Len(t, job.Requirements, 2)
	assert.Equal(t, "Python, 5+ years experience, Leadership", job.Requirements[0])
	require.Len(t, job.Responsibilities, 2)
	assert.Equal(t, "Design and operate backend services", job.Responsibilities[0])
}

func TestParse_TierScenario(t *testing.T) {
	job := Parse(englishPosting, types.LanguageEN)

	mustHave := job.MustHaveTerms()
	assert.Contains(t, mustHave, "python")
	assert.Contains(t, mustHave, "5+ years experience")
	assert.Contains(t, mustHave, "leadership")

	// Docker is mentioned once, outside any requirements block.
	assert.Contains(t, job.NiceToHaveTerms(), "docker")
	assert.NotContains(t, mustHave, "docker")
}

func TestParse_RussianPosting(t *testing.T) {
	text := `Ведущий разработчик Go
Компания: Рога и Копыта

Требования:
- Go, опыт от 3 лет
- PostgreSQL

Обязанности:
- Разработка микросервисов

Условия:
- Удалённая работа`

	job := Parse(text, types.LanguageRU)

	assert.Equal(t, "Ведущий разработчик Go", job.Title)
	assert.Equal(t, "Рога и Копыта", job.Company)
	require.Len(t, job.Requirements, 2)
	require.Len(t, job.Responsibilities, 1)
	// Items under "Условия" must not leak into either list.
	assert.NotContains(t, job.Requirements, "Удалённая работа")
	assert.NotContains(t, job.Responsibilities, "Удалённая работа")

	assert.Contains(t, job.MustHaveTerms(), "postgresql")
}

func TestParse_NoHeadersFallsBackToRequirementLines(t *testing.T) {
	text := `Backend Developer
We are a small team.
- Go and PostgreSQL
- Docker`

	job := Parse(text, types.LanguageEN)

	assert.Equal(t, "Backend Developer", job.Title)
	assert.Contains(t, job.Requirements, "Go and PostgreSQL")
	assert.Contains(t, job.Requirements, "Docker")
	assert.Contains(t, job.Requirements, "We are a small team.")
	assert.Empty(t, job.Responsibilities)
}

func TestParse_NoHeadersSkipsTitleAfterLeadingBlanks(t *testing.T) {
	text := "\n\nBackend Developer.\n- Go and PostgreSQL"

	job := Parse(text, types.LanguageEN)

	// The title line stays out of the requirements even when blank lines
	// precede it.
	assert.NotContains(t, job.Requirements, "Backend Developer.")
	assert.Contains(t, job.Requirements, "Go and PostgreSQL")
}

func TestParse_LabeledTitleWins(t *testing.T) {
	text := `Position: Data Engineer
Some marketing blurb that is rather long and should not become the title.

Requirements:
- SQL`

	job := Parse(text, types.LanguageEN)

	assert.Equal(t, "Data Engineer", job.Title)
}

func TestParsePrefilled_StructuredFieldsWin(t *testing.T) {
	job := ParsePrefilled(englishPosting, "Platform Engineer", "Acme", types.LanguageEN)

	assert.Equal(t, "Platform Engineer", job.Title)
	assert.Equal(t, "Acme", job.Company)
}

func TestParse_EmptyTextDegradesGracefully(t *testing.T) {
	job := Parse("", types.LanguageUnknown)

	assert.Empty(t, job.Title)
	assert.Empty(t, job.Requirements)
	assert.Empty(t, job.Keywords)
}

func TestClassifyTiers_WholeWordsOnly(t *testing.T) {
	// "go" inside "google" and "java" inside "javascript" are not
	// occurrences of those terms.
	reqs := []string{"Experience with Google Cloud and JavaScript"}
	text := "We run on Google Cloud. JavaScript powers the frontend, JavaScript everywhere."

	classified := ClassifyTiers([]string{"go", "java"}, reqs, text)

	require.Len(t, classified, 2)
	assert.Equal(t, types.TierNiceToHave, classified[0].Tier)
	assert.Equal(t, types.TierNiceToHave, classified[1].Tier)

	classified = ClassifyTiers([]string{"go"}, []string{"Go, 3+ years"}, text)
	assert.Equal(t, types.TierMustHave, classified[0].Tier)
}

func TestCountTerm_CyrillicBoundaries(t *testing.T) {
	// Rune-based boundaries: "опыт" must not match inside "опытный".
	assert.Equal(t, 0, countTerm("опытный разработчик", "опыт"))
	assert.Equal(t, 2, countTerm("опыт работы, опыт руководства", "опыт"))
	assert.Equal(t, 1, countTerm("знание c++ обязательно", "c++"))
}

func TestClassifyTiers_RepeatedTermIsMustHave(t *testing.T) {
	text := "We love Docker. Docker is everywhere here."

	classified := ClassifyTiers([]string{"docker", "kafka"}, nil, text)

	require.Len(t, classified, 2)
	assert.Equal(t, types.TierMustHave, classified[0].Tier)
	assert.Equal(t, types.TierNiceToHave, classified[1].Tier)
}
