package output

import (
	"fmt"
	"strings"

	"github.com/erizov/jobmatch/internal/types"
)

// Markdown renders a resume as a markdown document.
func Markdown(resume *types.Resume) string {
	var sb strings.Builder

	if resume.Contact.Name != "" {
		fmt.Fprintf(&sb, "# %s\n", resume.Contact.Name)
	}
	if line := contactLine(resume.Contact); line != "" {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if resume.Summary != "" {
		writeMarkdownSection(&sb, headerFor(resume.Language, "summary"))
		sb.WriteString(resume.Summary)
		sb.WriteString("\n")
	}

	if len(resume.Experience) > 0 {
		writeMarkdownSection(&sb, headerFor(resume.Language, "experience"))
		for i, entry := range resume.Experience {
			if i > 0 {
				sb.WriteString("\n")
			}
			fmt.Fprintf(&sb, "### %s\n", formatEntryHeading(entry))
			for _, bullet := range entry.Bullets {
				fmt.Fprintf(&sb, "- %s\n", bullet)
			}
		}
	}

	if len(resume.Skills) > 0 {
		writeMarkdownSection(&sb, headerFor(resume.Language, "skills"))
		sb.WriteString(strings.Join(resume.Skills, ", "))
		sb.WriteString("\n")
	}

	if len(resume.Education) > 0 {
		writeMarkdownSection(&sb, headerFor(resume.Language, "education"))
		for _, entry := range resume.Education {
			fmt.Fprintf(&sb, "- %s\n", formatEducation(entry))
		}
	}

	return sb.String()
}

func writeMarkdownSection(sb *strings.Builder, header string) {
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
	fmt.Fprintf(sb, "## %s\n", header)
}

// Report renders a match result and any rewrite warnings as markdown.
func Report(result types.MatchResult, warnings []string) string {
	return report(result, nil, warnings)
}

// OptimizeReport is Report plus the re-scored ATS value after rewriting.
func OptimizeReport(result types.MatchResult, scoreAfter float64, warnings []string) string {
	return report(result, &scoreAfter, warnings)
}

func report(result types.MatchResult, scoreAfter *float64, warnings []string) string {
	var sb strings.Builder

	sb.WriteString("# Match Report\n\n")
	fmt.Fprintf(&sb, "**ATS score: %.1f / 100**\n", result.ATSScore)
	if scoreAfter != nil {
		fmt.Fprintf(&sb, "**ATS score after rewrite: %.1f / 100 (%+.1f)**\n",
			*scoreAfter, *scoreAfter-result.ATSScore)
	}

	if len(result.OverlapKeywords) > 0 {
		sb.WriteString("\n## Matched keywords\n")
		for _, term := range result.OverlapKeywords {
			fmt.Fprintf(&sb, "- %s\n", term)
		}
	}

	if len(result.MissingKeywords) > 0 {
		sb.WriteString("\n## Missing keywords\n")
		mustHave := make(map[string]bool, len(result.MustHaveMissing))
		for _, term := range result.MustHaveMissing {
			mustHave[term] = true
		}
		for _, term := range result.MissingKeywords {
			if mustHave[term] {
				fmt.Fprintf(&sb, "- %s (must have)\n", term)
			} else {
				fmt.Fprintf(&sb, "- %s\n", term)
			}
		}
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("\n## Recommendations\n")
		for i, rec := range result.Recommendations {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, rec)
		}
	}

	if len(warnings) > 0 {
		sb.WriteString("\n## Warnings\n")
		for _, warning := range warnings {
			fmt.Fprintf(&sb, "- %s\n", warning)
		}
	}

	return sb.String()
}
