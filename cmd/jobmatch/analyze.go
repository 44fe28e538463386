package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erizov/jobmatch/internal/output"
	"github.com/erizov/jobmatch/internal/pipeline"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job posting",
	Long:  "Parse a resume and a job posting, extract keywords from both, and report the match score with missing keywords and recommendations.",
	RunE:  runAnalyze,
}

var (
	analyzeResume  string
	analyzeJob     string
	analyzeJobURL  string
	analyzeTitle   string
	analyzeCompany string
	analyzeJSON    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file (.txt, .pdf, .docx)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job posting text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL of the job posting to fetch")
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "Job title override")
	analyzeCmd.Flags().StringVar(&analyzeCompany, "company", "", "Company name override")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full analysis as JSON instead of a report")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	resumeText, err := readResume(analyzeResume)
	if err != nil {
		return err
	}

	job := jobInput{path: analyzeJob, url: analyzeJobURL, title: analyzeTitle, company: analyzeCompany}
	if err := job.validate(); err != nil {
		return err
	}

	ctx := context.Background()
	runner := pipeline.NewRunner(cfg)

	jobText, title, company, err := job.load(ctx, runner)
	if err != nil {
		return err
	}

	analysis, err := runner.Analyze(ctx, resumeText, jobText, title, company)
	if err != nil {
		return err
	}

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	}

	fmt.Print(output.Report(analysis.Match, analysis.Warnings))
	return nil
}
