package match

import (
	"fmt"

	"github.com/erizov/jobmatch/internal/types"
)

// minSummaryLength below which the summary counts as missing advice-wise.
const minSummaryLength = 50

// minSkillCount below which the skills section counts as thin.
const minSkillCount = 5

// recommend builds the recommendation list from a fixed rule table:
// must-have gaps first (in keyword rank order), then nice-to-have gaps,
// then structural advice. The list is capped at maxCount.
func recommend(resume *types.Resume, mustHaveMissing, missing []string, maxCount int) []string {
	var recs []string

	mustHave := toSet(mustHaveMissing)
	for _, term := range mustHaveMissing {
		recs = append(recs, fmt.Sprintf("Add missing must-have keyword %q to your skills section", term))
	}
	for _, term := range missing {
		if !mustHave[term] {
			recs = append(recs, fmt.Sprintf("Consider adding %q where it reflects real experience", term))
		}
	}

	if len(resume.Summary) < minSummaryLength {
		recs = append(recs, "Add a professional summary section highlighting key qualifications")
	}
	if len(resume.Skills) < minSkillCount {
		recs = append(recs, "Expand the skills section with relevant keywords")
	}

	if maxCount > 0 && len(recs) > maxCount {
		recs = recs[:maxCount]
	}
	return recs
}
