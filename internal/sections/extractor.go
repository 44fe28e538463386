// Package sections recovers a structured resume from raw text using
// language-keyed heading rules. Extraction never fails: unrecognized
// structure degrades to empty fields, not errors.
package sections

import (
	"strings"

	"github.com/erizov/jobmatch/internal/types"
)

// Extract converts raw resume text into a structured Resume. The raw text is
// segmented at heading-pattern boundaries, each segment is classified by its
// heading keyword, and section-specific parsers recover the details. When no
// section keyword and no contact marker is found anywhere, the whole text
// becomes the summary and every other field stays empty.
func Extract(rawText string, lang types.Language) types.Resume {
	resume := types.Resume{Language: lang, RawText: rawText}

	text := normalizeNewlines(rawText)
	segments := segment(text, lang)

	if len(segments) == 0 && !hasContactMarkers(text) {
		resume.Summary = strings.TrimSpace(text)
		return resume
	}

	resume.Contact = extractContact(text, lang)

	for _, seg := range segments {
		switch seg.section {
		case SectionSummary:
			if resume.Summary == "" {
				resume.Summary = strings.TrimSpace(seg.body)
			}
		case SectionExperience:
			if len(resume.Experience) == 0 {
				resume.Experience = parseExperience(seg.body)
			}
		case SectionSkills:
			if len(resume.Skills) == 0 {
				resume.Skills = parseSkills(seg.body)
			}
		case SectionEducation:
			if len(resume.Education) == 0 {
				resume.Education = parseEducation(seg.body)
			}
		case SectionContact:
			// Contact details are already recovered from the full text.
		}
	}
	return resume
}

type segmentBlock struct {
	section Section
	body    string
}

// segment walks the text line by line and groups lines under the most recent
// section heading. Text before the first heading belongs to no section (it
// is contact preamble) and is dropped here.
func segment(text string, lang types.Language) []segmentBlock {
	rules := rulesFor(lang)

	var segments []segmentBlock
	var current *segmentBlock
	var body []string

	flush := func() {
		if current != nil {
			current.body = strings.Join(body, "\n")
			segments = append(segments, *current)
		}
		current = nil
		body = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if sec, rest, ok := matchHeading(line, rules); ok {
			flush()
			current = &segmentBlock{section: sec}
			if rest != "" {
				body = append(body, rest)
			}
			continue
		}
		if current != nil {
			body = append(body, line)
		}
	}
	flush()
	return segments
}

// parseSkills extracts the skill list from a skills section body. Lines are
// stripped of bullet markers, split on commas and pipes, trimmed of trailing
// punctuation, and deduplicated case-insensitively preserving first casing.
func parseSkills(body string) []string {
	var skills []string
	seen := make(map[string]bool)

	for _, line := range strings.Split(body, "\n") {
		line = stripBullet(line)
		if line == "" {
			continue
		}
		for _, item := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == '|' || r == ';'
		}) {
			item = strings.Trim(strings.TrimSpace(item), ".;:")
			if item == "" {
				continue
			}
			key := strings.ToLower(item)
			if seen[key] {
				continue
			}
			seen[key] = true
			skills = append(skills, item)
		}
	}
	return skills
}

func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
