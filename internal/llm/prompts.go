// Package llm - prompts.go builds the rewrite prompts.
package llm

import (
	"fmt"
	"strings"

	"github.com/erizov/jobmatch/internal/types"
)

// PromptInput carries the parameters shared by all rewrite prompts.
type PromptInput struct {
	Tone            string // conservative, balanced, or aggressive
	Language        types.Language
	MissingKeywords []string
}

// toneInstructions maps a tone to the rewrite latitude the model gets.
var toneInstructions = map[string]string{
	"conservative": "Make minimal edits. Keep the original wording wherever possible and only tighten grammar and clarity.",
	"balanced":     "Improve clarity and impact. Weave in relevant keywords where they fit naturally.",
	"aggressive":   "Optimize strongly for applicant tracking systems. Restructure sentences around the target keywords.",
}

// SummaryPrompt builds the prompt for rewriting the professional summary.
func SummaryPrompt(in PromptInput, summary, jobTitle string) string {
	var sb strings.Builder
	sb.WriteString("You are rewriting the professional summary of a resume")
	if jobTitle != "" {
		sb.WriteString(fmt.Sprintf(" targeting the position %q", jobTitle))
	}
	sb.WriteString(".\n\n")
	writeCommonInstructions(&sb, in)
	sb.WriteString("Return ONLY the rewritten summary as plain text, no explanation.\n\n")
	sb.WriteString("Current summary:\n\"\"\"\n")
	sb.WriteString(summary)
	sb.WriteString("\n\"\"\"\n")
	return sb.String()
}

// BulletsPrompt builds the prompt for rewriting one experience entry's
// bullets. The model must return a JSON array of strings, one per bullet,
// in the original order.
func BulletsPrompt(in PromptInput, entry types.ExperienceEntry) string {
	var sb strings.Builder
	sb.WriteString("You are rewriting the achievement bullets of one work-experience entry on a resume.\n\n")
	if entry.Title != "" || entry.Company != "" {
		sb.WriteString(fmt.Sprintf("Entry: %s at %s\n\n", entry.Title, entry.Company))
	}
	writeCommonInstructions(&sb, in)
	sb.WriteString("Return ONLY a JSON array of strings, one rewritten bullet per original bullet, same order, no markdown.\n\n")
	sb.WriteString("Original bullets:\n")
	for _, bullet := range entry.Bullets {
		sb.WriteString("- ")
		sb.WriteString(bullet)
		sb.WriteString("\n")
	}
	return sb.String()
}

// SkillsPrompt builds the prompt for reordering and extending the skills
// line with missing keywords the candidate plausibly has.
func SkillsPrompt(in PromptInput, skills []string) string {
	var sb strings.Builder
	sb.WriteString("You are revising the skills section of a resume.\n")
	sb.WriteString("Reorder the existing skills so the ones matching the target keywords come first.\n")
	sb.WriteString("Do NOT add skills the candidate does not already list.\n\n")
	writeCommonInstructions(&sb, in)
	sb.WriteString("Return ONLY a comma-separated list of skills, no explanation.\n\n")
	sb.WriteString("Current skills: ")
	sb.WriteString(strings.Join(skills, ", "))
	sb.WriteString("\n")
	return sb.String()
}

// CoverLetterPrompt builds the prompt for drafting a cover letter from the
// resume toward a specific posting.
func CoverLetterPrompt(in PromptInput, resume *types.Resume, jobTitle, company string) string {
	var sb strings.Builder
	sb.WriteString("You are writing a short cover letter (three to four paragraphs) for a job application")
	if jobTitle != "" {
		sb.WriteString(fmt.Sprintf(" for the position %q", jobTitle))
	}
	if company != "" {
		sb.WriteString(fmt.Sprintf(" at %s", company))
	}
	sb.WriteString(".\n\n")
	writeCommonInstructions(&sb, in)
	sb.WriteString("Return ONLY the letter body as plain text, no salutation placeholders, no explanation.\n\n")
	if resume.Summary != "" {
		sb.WriteString("Candidate summary:\n")
		sb.WriteString(resume.Summary)
		sb.WriteString("\n\n")
	}
	if len(resume.Skills) > 0 {
		sb.WriteString("Candidate skills: ")
		sb.WriteString(strings.Join(resume.Skills, ", "))
		sb.WriteString("\n\n")
	}
	for _, entry := range resume.Experience {
		if entry.Title == "" && entry.Company == "" {
			continue
		}
		fmt.Fprintf(&sb, "Experience: %s at %s (%s)\n", entry.Title, entry.Company, entry.Dates)
	}
	return sb.String()
}

func writeCommonInstructions(sb *strings.Builder, in PromptInput) {
	if instruction, ok := toneInstructions[in.Tone]; ok {
		sb.WriteString(instruction)
		sb.WriteString("\n")
	}
	if len(in.MissingKeywords) > 0 {
		sb.WriteString("Target keywords to incorporate where truthful: ")
		sb.WriteString(strings.Join(in.MissingKeywords, ", "))
		sb.WriteString("\n")
	}
	if in.Language == types.LanguageRU {
		sb.WriteString("Write the result in Russian.\n")
	} else {
		sb.WriteString("Write the result in English.\n")
	}
	sb.WriteString("Never invent employers, dates, or numbers that are not in the original text.\n\n")
}
