package main

import (
	"context"
	"fmt"

	"github.com/erizov/jobmatch/internal/ingestion"
	"github.com/erizov/jobmatch/internal/pipeline"
)

// jobInput describes where a job posting comes from: a local file or a URL.
type jobInput struct {
	path    string
	url     string
	title   string
	company string
}

func (in jobInput) validate() error {
	if in.path == "" && in.url == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}
	if in.path != "" && in.url != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}
	return nil
}

// load returns the posting text plus title and company, fetching the URL
// when no file is given. Explicit flags win over platform-extracted fields.
func (in jobInput) load(ctx context.Context, runner *pipeline.Runner) (text, title, company string, err error) {
	title, company = in.title, in.company
	if in.path != "" {
		text, _, err = ingestion.ReadFile(in.path)
		if err != nil {
			return "", "", "", fmt.Errorf("failed to read job posting: %w", err)
		}
		return text, title, company, nil
	}

	text, fetchedTitle, fetchedCompany, err := runner.FetchJob(ctx, in.url)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	if title == "" {
		title = fetchedTitle
	}
	if company == "" {
		company = fetchedCompany
	}
	return text, title, company, nil
}

func readResume(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("--resume is required")
	}
	text, _, err := ingestion.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume: %w", err)
	}
	return text, nil
}
