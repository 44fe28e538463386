// Package match compares resume keywords against job-posting keywords and
// produces an ATS compatibility score with actionable recommendations.
package match

import (
	"strings"

	"github.com/erizov/jobmatch/internal/types"
)

// Weights are the ATS score components. They are heuristic policy, kept
// configurable rather than hard-coded.
type Weights struct {
	Keyword   float64 `json:"keyword"`
	Title     float64 `json:"title"`
	Structure float64 `json:"structure"`
}

// DefaultWeights returns the standard 0.6/0.2/0.2 split.
func DefaultWeights() Weights {
	return Weights{Keyword: 0.6, Title: 0.2, Structure: 0.2}
}

// Options configures scoring.
type Options struct {
	Weights            Weights
	MaxRecommendations int
}

// DefaultOptions returns the standard scoring configuration.
func DefaultOptions() Options {
	return Options{Weights: DefaultWeights(), MaxRecommendations: 10}
}

// expectedSections are the resume sections the structure score counts.
var expectedSections = []string{"summary", "experience", "skills", "education"}

// Score computes a MatchResult for a resume against a job posting. The
// function is pure and total: any well-formed pair of documents yields a
// score in [0,100], including postings with zero keywords.
func Score(resume *types.Resume, resumeTerms []string, job *types.JobPosting, opts Options) types.MatchResult {
	resumeSet := toSet(resumeTerms)

	var overlap, missing, mustHaveMissing []string
	for _, kw := range job.Keywords {
		term := strings.ToLower(kw.Term)
		if resumeSet[term] {
			overlap = append(overlap, term)
			continue
		}
		missing = append(missing, term)
		if kw.Tier == types.TierMustHave {
			mustHaveMissing = append(mustHaveMissing, term)
		}
	}

	keywordRatio := 0.0
	if len(job.Keywords) > 0 {
		keywordRatio = float64(len(overlap)) / float64(len(job.Keywords))
	}

	titleScore := titleMatchScore(resumeTitle(resume), job.Title)
	structureScore := structureRatio(resume)

	score := 100 * (keywordRatio*opts.Weights.Keyword +
		titleScore*opts.Weights.Title +
		structureScore*opts.Weights.Structure)
	score = clamp(score, 0, 100)

	return types.MatchResult{
		ATSScore:        score,
		OverlapKeywords: overlap,
		MissingKeywords: missing,
		MustHaveMissing: mustHaveMissing,
		Recommendations: recommend(resume, mustHaveMissing, missing, opts.MaxRecommendations),
	}
}

// resumeTitle is the candidate's current title: the most recent experience
// entry's title.
func resumeTitle(resume *types.Resume) string {
	if len(resume.Experience) == 0 {
		return ""
	}
	return resume.Experience[0].Title
}

// titleMatchScore is 1.0 for an exact normalized match, 0.5 for partial
// token overlap, 0 otherwise.
func titleMatchScore(resumeTitle, jobTitle string) float64 {
	r := strings.ToLower(strings.TrimSpace(resumeTitle))
	j := strings.ToLower(strings.TrimSpace(jobTitle))
	if r == "" || j == "" {
		return 0
	}
	if r == j {
		return 1.0
	}
	jobTokens := toSet(strings.Fields(j))
	for _, token := range strings.Fields(r) {
		if jobTokens[token] {
			return 0.5
		}
	}
	return 0
}

// structureRatio is the fraction of expected resume sections with content.
func structureRatio(resume *types.Resume) float64 {
	present := 0
	for _, section := range expectedSections {
		if resume.HasSection(section) {
			present++
		}
	}
	return float64(present) / float64(len(expectedSections))
}

func toSet(terms []string) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, term := range terms {
		set[strings.ToLower(term)] = true
	}
	return set
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
