package output

import (
	"strings"

	"github.com/erizov/jobmatch/internal/types"
)

// Text renders a resume as plain text with upper-cased section headers.
// Empty sections are omitted.
func Text(resume *types.Resume) string {
	var sb strings.Builder

	writeContactText(&sb, resume.Contact)

	if resume.Summary != "" {
		writeTextSection(&sb, headerFor(resume.Language, "summary"))
		sb.WriteString(resume.Summary)
		sb.WriteString("\n")
	}

	if len(resume.Experience) > 0 {
		writeTextSection(&sb, headerFor(resume.Language, "experience"))
		for i, entry := range resume.Experience {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(formatEntryHeading(entry))
			sb.WriteString("\n")
			for _, bullet := range entry.Bullets {
				sb.WriteString("- ")
				sb.WriteString(bullet)
				sb.WriteString("\n")
			}
		}
	}

	if len(resume.Skills) > 0 {
		writeTextSection(&sb, headerFor(resume.Language, "skills"))
		sb.WriteString(strings.Join(resume.Skills, ", "))
		sb.WriteString("\n")
	}

	if len(resume.Education) > 0 {
		writeTextSection(&sb, headerFor(resume.Language, "education"))
		for _, entry := range resume.Education {
			sb.WriteString(formatEducation(entry))
			sb.WriteString("\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func writeContactText(sb *strings.Builder, contact types.Contact) {
	if contact.Name != "" {
		sb.WriteString(contact.Name)
		sb.WriteString("\n")
	}
	line := contactLine(contact)
	if line != "" {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}

func contactLine(contact types.Contact) string {
	var parts []string
	for _, v := range []string{contact.Email, contact.Phone, contact.Location, contact.LinkedIn, contact.GitHub} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " | ")
}

func writeTextSection(sb *strings.Builder, header string) {
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(strings.ToUpper(header))
	sb.WriteString("\n")
}

func formatEntryHeading(entry types.ExperienceEntry) string {
	heading := entry.Title
	if entry.Company != "" {
		if heading != "" {
			heading += " — " + entry.Company
		} else {
			heading = entry.Company
		}
	}
	if entry.Dates != "" {
		heading += " (" + entry.Dates + ")"
	}
	if heading == "" {
		heading = strings.TrimSpace(entry.RawText)
	}
	return heading
}

func formatEducation(entry types.EducationEntry) string {
	var parts []string
	for _, v := range []string{entry.Degree, entry.Institution} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	line := strings.Join(parts, ", ")
	if entry.Dates != "" {
		line += " (" + entry.Dates + ")"
	}
	return line
}
