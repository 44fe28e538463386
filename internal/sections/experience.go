package sections

import (
	"regexp"
	"strings"

	"github.com/erizov/jobmatch/internal/types"
)

var (
	yearPattern      = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	dateRangePattern = regexp.MustCompile(`(?i)\b(19|20)\d{2}\s*(?:[-–—]\s*(?:(19|20)\d{2}|present|current|настоящее время|н\.в\.))?`)
	bulletMarker     = regexp.MustCompile(`^([-•*·]|\d+[.)])\s*`)
)

// isBulletLine reports whether a line starts with a bullet glyph or a
// numbered-list marker.
func isBulletLine(line string) bool {
	return bulletMarker.MatchString(strings.TrimSpace(line))
}

// stripBullet removes a leading bullet or list marker.
func stripBullet(line string) string {
	return strings.TrimSpace(bulletMarker.ReplaceAllString(strings.TrimSpace(line), ""))
}

// parseExperience splits the experience section body into entries and parses
// each one. It never fails; unparseable structure degrades to entries with
// empty header fields.
func parseExperience(body string) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	for _, block := range splitEntries(body) {
		if entry, ok := parseEntry(block); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// splitEntries breaks the section body into per-position blocks. Blank lines
// always end an entry; a non-bullet, date-free line after a complete header
// plus bullet run starts a new one.
func splitEntries(body string) []string {
	var blocks []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}

		switch {
		case isBulletLine(trimmed):
			current = append(current, line)
		case len(current) < 3:
			// Header lines: title, company, dates.
			current = append(current, line)
		case !yearPattern.MatchString(trimmed) && hasBullets(current):
			// A plain line after a bullet run reads as the next entry's title.
			flush()
			current = append(current, line)
		default:
			current = append(current, line)
		}
	}
	flush()
	return blocks
}

func hasBullets(lines []string) bool {
	for _, line := range lines {
		if isBulletLine(line) {
			return true
		}
	}
	return false
}

// parseEntry parses one experience block. The first date-free header line is
// the title, the second the company; the line carrying a year range supplies
// the dates. Header fields the block does not state stay empty.
func parseEntry(block string) (types.ExperienceEntry, bool) {
	var headerLines, bulletLines []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isBulletLine(line) || len(bulletLines) > 0 {
			// Non-bullet lines after the first bullet are continuations.
			bulletLines = append(bulletLines, line)
			continue
		}
		headerLines = append(headerLines, line)
	}
	if len(headerLines) == 0 && len(bulletLines) == 0 {
		return types.ExperienceEntry{}, false
	}

	entry := types.ExperienceEntry{RawText: block}
	for _, line := range headerLines {
		if yearPattern.MatchString(line) {
			if entry.Dates == "" {
				entry.Dates = strings.TrimSpace(dateRangePattern.FindString(line))
			}
			// Text sharing the dates line is usually the employer.
			leftover := strings.Trim(dateRangePattern.ReplaceAllString(line, ""), " \t|,–—-")
			if leftover != "" && entry.Company == "" {
				entry.Company = leftover
			}
			continue
		}
		if entry.Title == "" {
			entry.Title = line
		} else if entry.Company == "" {
			entry.Company = line
		}
	}

	// "Title at Company" collapsed onto one line.
	if entry.Company == "" && entry.Title != "" {
		if title, company, ok := splitTitleCompany(entry.Title); ok {
			entry.Title, entry.Company = title, company
		}
	}

	for _, line := range bulletLines {
		if cleaned := stripBullet(line); cleaned != "" {
			entry.Bullets = append(entry.Bullets, cleaned)
		}
	}
	return entry, true
}

// titleCompanySeparator splits "Role at Company" / "Role — Company" /
// "Role | Company" header lines.
var titleCompanySeparator = regexp.MustCompile(`(?i)^(.{3,}?)\s+(?:at|@|[|–—])\s+(.{2,})$`)

func splitTitleCompany(line string) (string, string, bool) {
	m := titleCompanySeparator.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}
