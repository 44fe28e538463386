// Package rewrite orchestrates LLM rewrites of resume sections. Every
// candidate rewrite is checked against the fact ledger of the source
// resume; a rewrite that introduces unverified facts is discarded and
// reported as a warning instead of silently shipped.
package rewrite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/erizov/jobmatch/internal/facts"
	"github.com/erizov/jobmatch/internal/llm"
	"github.com/erizov/jobmatch/internal/types"
)

// Generator produces text for a prompt. *llm.GeminiClient implements it;
// tests substitute a fake.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Options configures the rewrite pass.
type Options struct {
	Tone        string
	Language    types.Language
	JobTitle    string
	MaxKeywords int // cap on missing keywords fed into prompts
}

// DefaultOptions returns the standard rewrite configuration.
func DefaultOptions() Options {
	return Options{Tone: "balanced", Language: types.LanguageEN, MaxKeywords: 10}
}

// Result is the enhanced resume plus the warnings produced along the way.
// The resume always comes back usable: sections whose rewrite failed or
// was flagged keep their original text.
type Result struct {
	Resume   types.Resume
	Warnings []string
}

// Enhance rewrites the summary, experience bullets, and skills order of a
// resume toward a job posting's missing keywords. The caller decides what
// to do with the warnings; Enhance itself never fails the document. The
// caller's resume is never modified: the result works on a deep copy.
func Enhance(ctx context.Context, gen Generator, resume *types.Resume, analysis types.MatchResult, opts Options) *Result {
	result := &Result{Resume: resume.Clone()}
	ledger := facts.BuildLedger(resume)

	input := llm.PromptInput{
		Tone:            opts.Tone,
		Language:        opts.Language,
		MissingKeywords: targetKeywords(analysis, opts.MaxKeywords),
	}

	result.enhanceSummary(ctx, gen, input, ledger, opts.JobTitle)
	result.enhanceBullets(ctx, gen, input, ledger)
	result.enhanceSkills(ctx, gen, input)

	return result
}

// CoverLetter drafts a cover letter for the resume toward the posting. The
// letter is validated against the combined fact ledger of the resume and
// the posting text, since it may legitimately cite either; a flagged letter
// is dropped. An empty string means no usable letter was produced.
func CoverLetter(ctx context.Context, gen Generator, resume *types.Resume, job *types.JobPosting, analysis types.MatchResult, opts Options) (string, []string) {
	input := llm.PromptInput{
		Tone:            opts.Tone,
		Language:        opts.Language,
		MissingKeywords: targetKeywords(analysis, opts.MaxKeywords),
	}

	letter, err := gen.Generate(ctx, llm.CoverLetterPrompt(input, resume, job.Title, job.Company))
	if err != nil {
		return "", []string{fmt.Sprintf("cover letter generation failed: %v", err)}
	}
	letter = strings.TrimSpace(letter)
	if letter == "" {
		return "", []string{"cover letter generation returned empty text"}
	}

	ledger := facts.BuildLedger(resume)
	ledger.Merge(facts.ScanText(job.RawText))
	if verdict := facts.Validate(ledger, letter); !verdict.OK {
		return "", []string{fmt.Sprintf("cover letter discarded, unverified facts: %s",
			strings.Join(verdict.Unverified, ", "))}
	}
	return letter, nil
}

// targetKeywords is must-have gaps first, then the rest, capped.
func targetKeywords(analysis types.MatchResult, limit int) []string {
	seen := make(map[string]bool)
	var terms []string
	for _, term := range analysis.MustHaveMissing {
		if !seen[term] {
			seen[term] = true
			terms = append(terms, term)
		}
	}
	for _, term := range analysis.MissingKeywords {
		if !seen[term] {
			seen[term] = true
			terms = append(terms, term)
		}
	}
	if limit > 0 && len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}

func (r *Result) enhanceSummary(ctx context.Context, gen Generator, input llm.PromptInput, ledger types.FactLedger, jobTitle string) {
	if r.Resume.Summary == "" {
		return
	}

	candidate, err := gen.Generate(ctx, llm.SummaryPrompt(input, r.Resume.Summary, jobTitle))
	if err != nil {
		r.warnf("summary rewrite failed: %v", err)
		return
	}
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		r.warnf("summary rewrite returned empty text, keeping original")
		return
	}

	if verdict := facts.Validate(ledger, candidate); !verdict.OK {
		r.warnf("summary rewrite discarded, unverified facts: %s", strings.Join(verdict.Unverified, ", "))
		return
	}
	r.Resume.Summary = candidate
}

func (r *Result) enhanceBullets(ctx context.Context, gen Generator, input llm.PromptInput, ledger types.FactLedger) {
	for i := range r.Resume.Experience {
		entry := &r.Resume.Experience[i]
		if len(entry.Bullets) == 0 {
			continue
		}

		raw, err := gen.Generate(ctx, llm.BulletsPrompt(input, *entry))
		if err != nil {
			r.warnf("bullet rewrite failed for %q: %v", entry.Title, err)
			continue
		}

		var bullets []string
		if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &bullets); err != nil {
			r.warnf("bullet rewrite for %q returned malformed output, keeping original", entry.Title)
			continue
		}
		if len(bullets) != len(entry.Bullets) {
			r.warnf("bullet rewrite for %q changed bullet count, keeping original", entry.Title)
			continue
		}

		if verdict := facts.Validate(ledger, strings.Join(bullets, "\n")); !verdict.OK {
			r.warnf("bullet rewrite for %q discarded, unverified facts: %s",
				entry.Title, strings.Join(verdict.Unverified, ", "))
			continue
		}
		entry.Bullets = bullets
	}
}

// enhanceSkills only reorders: anything the model adds that the candidate
// never listed is dropped, so no fact check is needed.
func (r *Result) enhanceSkills(ctx context.Context, gen Generator, input llm.PromptInput) {
	if len(r.Resume.Skills) == 0 {
		return
	}

	raw, err := gen.Generate(ctx, llm.SkillsPrompt(input, r.Resume.Skills))
	if err != nil {
		r.warnf("skills rewrite failed: %v", err)
		return
	}

	original := make(map[string]string, len(r.Resume.Skills))
	for _, skill := range r.Resume.Skills {
		original[strings.ToLower(skill)] = skill
	}

	var reordered []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		key := strings.ToLower(strings.TrimSpace(part))
		if skill, ok := original[key]; ok && !seen[key] {
			seen[key] = true
			reordered = append(reordered, skill)
		}
	}
	// Append anything the model dropped so no skill is lost.
	for _, skill := range r.Resume.Skills {
		if !seen[strings.ToLower(skill)] {
			reordered = append(reordered, skill)
		}
	}
	r.Resume.Skills = reordered
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
