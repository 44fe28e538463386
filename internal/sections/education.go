package sections

import (
	"regexp"
	"strings"

	"github.com/erizov/jobmatch/internal/types"
)

var (
	degreePattern  = regexp.MustCompile(`(?i)(bachelor|master|phd|doctorate|b\.?sc|m\.?sc|mba|бакалавр|магистр|специалист|диплом)[^,|\n]*`)
	eduDatePattern = regexp.MustCompile(`(\d{4}|\d{1,2}/\d{4})(\s*[-–—]\s*(\d{4}|\d{1,2}/\d{4}))?`)
)

// parseEducation splits the education section body into entries. A new
// degree keyword or a blank line starts a new entry.
func parseEducation(body string) []types.EducationEntry {
	var entries []types.EducationEntry
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		if entry, ok := parseEducationEntry(current); ok {
			entries = append(entries, entry)
		}
		current = nil
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		if degreePattern.MatchString(line) && len(current) > 0 {
			flush()
		}
		current = append(current, line)
	}
	flush()
	return entries
}

// parseEducationEntry parses one education block: degree and dates are
// cut out of the first line, the rest of the line is the institution, and
// any following lines become details.
func parseEducationEntry(lines []string) (types.EducationEntry, bool) {
	if len(lines) == 0 {
		return types.EducationEntry{}, false
	}
	first := stripBullet(lines[0])

	entry := types.EducationEntry{
		Degree: strings.TrimSpace(degreePattern.FindString(first)),
		Dates:  strings.TrimSpace(eduDatePattern.FindString(first)),
	}

	institution := first
	if entry.Degree != "" {
		institution = strings.Replace(institution, entry.Degree, "", 1)
	}
	institution = eduDatePattern.ReplaceAllString(institution, "")
	entry.Institution = strings.Trim(institution, " \t|,–—-•*")

	if len(lines) > 1 {
		entry.Details = strings.Join(lines[1:], "\n")
	}
	if entry.Degree == "" && entry.Institution == "" && entry.Details == "" {
		return types.EducationEntry{}, false
	}
	return entry, true
}
