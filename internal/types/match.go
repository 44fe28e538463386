package types

// MatchResult reports how well a resume matches a job posting.
// A MatchResult is created once per (resume, posting) pair and never mutated.
type MatchResult struct {
	ATSScore        float64  `json:"ats_score"` // 0-100
	OverlapKeywords []string `json:"overlap_keywords,omitempty"`
	MissingKeywords []string `json:"missing_keywords,omitempty"`
	MustHaveMissing []string `json:"must_have_missing,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}
