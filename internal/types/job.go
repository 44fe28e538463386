package types

// Tier classifies a job-posting keyword by inferred importance.
type Tier string

// Keyword tiers. A keyword is must-have when it appears in a requirements
// block or more than once in the posting text; otherwise nice-to-have.
const (
	TierMustHave   Tier = "must_have"
	TierNiceToHave Tier = "nice_to_have"
)

// Keyword is a term extracted from a job posting together with its tier.
type Keyword struct {
	Term string `json:"term"`
	Tier Tier   `json:"tier"`
}

// JobPosting is the structured representation of a job-posting document.
type JobPosting struct {
	Title            string    `json:"title"`
	Company          string    `json:"company,omitempty"`
	Location         string    `json:"location,omitempty"`
	Requirements     []string  `json:"requirements,omitempty"`
	Responsibilities []string  `json:"responsibilities,omitempty"`
	Keywords         []Keyword `json:"keywords,omitempty"`
	Language         Language  `json:"language"`
	RawText          string    `json:"raw_text"`
}

// MustHaveTerms returns the terms tagged must_have, in keyword order.
func (j *JobPosting) MustHaveTerms() []string {
	return j.termsByTier(TierMustHave)
}

// NiceToHaveTerms returns the terms tagged nice_to_have, in keyword order.
func (j *JobPosting) NiceToHaveTerms() []string {
	return j.termsByTier(TierNiceToHave)
}

func (j *JobPosting) termsByTier(tier Tier) []string {
	terms := make([]string, 0, len(j.Keywords))
	for _, kw := range j.Keywords {
		if kw.Tier == tier {
			terms = append(terms, kw.Term)
		}
	}
	return terms
}
