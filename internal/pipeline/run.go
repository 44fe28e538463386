// Package pipeline provides the high-level orchestration shared by the CLI
// and the HTTP server: ingest documents, detect languages, extract
// structure, score the match, and optionally rewrite toward the posting.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/erizov/jobmatch/internal/config"
	"github.com/erizov/jobmatch/internal/fetch"
	"github.com/erizov/jobmatch/internal/jobposting"
	"github.com/erizov/jobmatch/internal/keywords"
	"github.com/erizov/jobmatch/internal/language"
	"github.com/erizov/jobmatch/internal/logger"
	"github.com/erizov/jobmatch/internal/match"
	"github.com/erizov/jobmatch/internal/output"
	"github.com/erizov/jobmatch/internal/rewrite"
	"github.com/erizov/jobmatch/internal/sections"
	"github.com/erizov/jobmatch/internal/types"
)

// Analysis is one complete resume-against-posting run. It is owned by the
// request that created it and read-only once returned.
type Analysis struct {
	ID       uuid.UUID         `json:"id"`
	Resume   types.Resume      `json:"resume"`
	Job      types.JobPosting  `json:"job"`
	Match    types.MatchResult `json:"match"`
	Warnings []string          `json:"warnings,omitempty"`
}

// OptimizeResult is an Analysis plus the rewritten document renderings and
// the re-scored match, so callers see what the rewrite bought them.
type OptimizeResult struct {
	Analysis       *Analysis    `json:"analysis"`
	Resume         types.Resume `json:"resume"`
	Text           string       `json:"text"`
	Markdown       string       `json:"markdown"`
	CoverLetter    string       `json:"cover_letter,omitempty"`
	Report         string       `json:"report"`
	ATSScoreBefore float64      `json:"ats_score_before"`
	ATSScoreAfter  float64      `json:"ats_score_after"`
	Improvement    float64      `json:"improvement"`
	Warnings       []string     `json:"warnings,omitempty"`
}

// Runner wires the analysis stages together under one configuration.
type Runner struct {
	cfg     *config.Config
	fetcher *fetch.CachedFetcher
}

// NewRunner creates a Runner for the given configuration. Fetched postings
// are cached so repeated analyses of the same URL do not re-hit the board.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{cfg: cfg, fetcher: fetch.NewCachedFetcher(nil)}
}

// languageOptions maps config to detector options.
func (r *Runner) languageOptions() language.Options {
	return language.Options{
		MinTextLength:       r.cfg.MinTextLength,
		ConfidenceThreshold: r.cfg.ConfidenceThreshold,
		CyrillicRatio:       r.cfg.CyrillicRatio,
	}
}

// detect classifies a document's language, degrading to unknown (with a
// warning) rather than failing when the text is too short.
func (r *Runner) detect(text, label string) (types.Language, []string) {
	lang, confidence, err := language.Detect(text, r.languageOptions())
	if err != nil {
		if errors.Is(err, language.ErrInsufficientText) {
			return types.LanguageUnknown,
				[]string{fmt.Sprintf("%s too short for language detection, using language-neutral rules", label)}
		}
		return types.LanguageUnknown, []string{fmt.Sprintf("%s language detection failed: %v", label, err)}
	}
	logger.Debug().Str("doc", label).Str("lang", string(lang)).Float64("confidence", confidence).
		Msg("language detected")
	return lang, nil
}

// ParseResume extracts a structured resume from raw text.
func (r *Runner) ParseResume(text string) (types.Resume, []string) {
	lang, warnings := r.detect(text, "resume")
	resume := sections.Extract(text, lang)
	return resume, warnings
}

// ParseJob extracts a structured posting from raw text. Pre-split title
// and company fields (from a known job board's markup) may be empty.
func (r *Runner) ParseJob(text, title, company string) (types.JobPosting, []string) {
	lang, warnings := r.detect(text, "job posting")
	job := jobposting.ParseWithOptions(text, lang, jobposting.Options{
		Title:       title,
		Company:     company,
		TopKeywords: r.cfg.TopKeywords,
	})
	return job, warnings
}

// FetchJob retrieves a posting from a URL, with pre-split fields when the
// board is recognized.
func (r *Runner) FetchJob(ctx context.Context, url string) (text, title, company string, err error) {
	doc, err := r.fetcher.Job(ctx, url)
	if err != nil {
		return "", "", "", err
	}
	logger.Info().Str("url", url).Str("platform", string(doc.Platform)).
		Bool("from_cache", doc.FromCache).Msg("fetched job posting")
	return doc.Text, doc.Fields.Title, doc.Fields.Company, nil
}

// Analyze parses both documents concurrently and scores the match.
func (r *Runner) Analyze(ctx context.Context, resumeText, jobText, jobTitle, jobCompany string) (*Analysis, error) {
	analysis := &Analysis{ID: uuid.New()}

	var resumeWarnings, jobWarnings []string
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		analysis.Resume, resumeWarnings = r.ParseResume(resumeText)
		return nil
	})
	g.Go(func() error {
		analysis.Job, jobWarnings = r.ParseJob(jobText, jobTitle, jobCompany)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	analysis.Warnings = append(resumeWarnings, jobWarnings...)

	resumeTerms := keywords.ResumeTerms(&analysis.Resume)
	analysis.Match = match.Score(&analysis.Resume, resumeTerms, &analysis.Job, r.matchOptions())

	logger.Info().
		Str("analysis_id", analysis.ID.String()).
		Float64("ats_score", analysis.Match.ATSScore).
		Int("missing_keywords", len(analysis.Match.MissingKeywords)).
		Msg("analysis complete")
	return analysis, nil
}

// matchOptions maps config to scorer options.
func (r *Runner) matchOptions() match.Options {
	return match.Options{
		Weights: match.Weights{
			Keyword:   r.cfg.KeywordWeight,
			Title:     r.cfg.TitleWeight,
			Structure: r.cfg.StructureWeight,
		},
		MaxRecommendations: r.cfg.MaxRecommendations,
	}
}

// Optimize rewrites the analyzed resume toward the posting, drafts a cover
// letter, re-scores the rewritten document, and renders the result. Flagged
// rewrites stay out of the document and surface as warnings; the caller
// decides whether they block delivery.
func (r *Runner) Optimize(ctx context.Context, gen rewrite.Generator, analysis *Analysis) *OptimizeResult {
	outputLang := language.DecideOutputLanguage(analysis.Resume.Language, analysis.Job.Language, true)
	opts := rewrite.Options{
		Tone:        r.cfg.Tone,
		Language:    outputLang,
		JobTitle:    analysis.Job.Title,
		MaxKeywords: r.cfg.TopKeywords,
	}

	enhanced := rewrite.Enhance(ctx, gen, &analysis.Resume, analysis.Match, opts)
	enhanced.Resume.Language = outputLang

	letter, letterWarnings := rewrite.CoverLetter(ctx, gen, &analysis.Resume, &analysis.Job, analysis.Match, opts)

	rescored := match.Score(&enhanced.Resume, keywords.ResumeTerms(&enhanced.Resume), &analysis.Job, r.matchOptions())

	rewriteWarnings := append(append([]string{}, enhanced.Warnings...), letterWarnings...)
	warnings := append(append([]string{}, analysis.Warnings...), rewriteWarnings...)
	result := &OptimizeResult{
		Analysis:       analysis,
		Resume:         enhanced.Resume,
		Text:           output.Text(&enhanced.Resume),
		Markdown:       output.Markdown(&enhanced.Resume),
		CoverLetter:    letter,
		Report:         output.OptimizeReport(analysis.Match, rescored.ATSScore, rewriteWarnings),
		ATSScoreBefore: analysis.Match.ATSScore,
		ATSScoreAfter:  rescored.ATSScore,
		Improvement:    rescored.ATSScore - analysis.Match.ATSScore,
		Warnings:       warnings,
	}

	logger.Info().
		Str("analysis_id", analysis.ID.String()).
		Float64("ats_score_before", result.ATSScoreBefore).
		Float64("ats_score_after", result.ATSScoreAfter).
		Int("warnings", len(rewriteWarnings)).
		Msg("optimization complete")
	return result
}
