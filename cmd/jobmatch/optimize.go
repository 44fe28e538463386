package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erizov/jobmatch/internal/llm"
	"github.com/erizov/jobmatch/internal/pipeline"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Rewrite a resume for a specific job posting",
	Long:  "Analyze a resume against a job posting, then rewrite the summary, experience bullets, and skills ordering toward the posting's keywords. Rewrites that invent facts are discarded.",
	RunE:  runOptimize,
}

var (
	optimizeResume  string
	optimizeJob     string
	optimizeJobURL  string
	optimizeTitle   string
	optimizeCompany string
	optimizeTone    string
	optimizeFormat  string
	optimizeOut     string
	optimizeLetter  string
	optimizeAPIKey  string
)

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeResume, "resume", "r", "", "Path to resume file (.txt, .pdf, .docx)")
	optimizeCmd.Flags().StringVarP(&optimizeJob, "job", "j", "", "Path to job posting text file")
	optimizeCmd.Flags().StringVar(&optimizeJobURL, "job-url", "", "URL of the job posting to fetch")
	optimizeCmd.Flags().StringVar(&optimizeTitle, "title", "", "Job title override")
	optimizeCmd.Flags().StringVar(&optimizeCompany, "company", "", "Company name override")
	optimizeCmd.Flags().StringVar(&optimizeTone, "tone", "", "Rewrite tone: conservative, balanced, or aggressive")
	optimizeCmd.Flags().StringVarP(&optimizeFormat, "format", "f", "text", "Output format: text or markdown")
	optimizeCmd.Flags().StringVarP(&optimizeOut, "out", "o", "", "Write the optimized resume to this file instead of stdout")
	optimizeCmd.Flags().StringVar(&optimizeLetter, "cover-letter-out", "", "Write the generated cover letter to this file")
	optimizeCmd.Flags().StringVar(&optimizeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if optimizeTone != "" {
		cfg.Tone = optimizeTone
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if optimizeFormat != "text" && optimizeFormat != "markdown" {
		return fmt.Errorf("unknown format: %s", optimizeFormat)
	}

	apiKey := optimizeAPIKey
	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	resumeText, err := readResume(optimizeResume)
	if err != nil {
		return err
	}

	job := jobInput{path: optimizeJob, url: optimizeJobURL, title: optimizeTitle, company: optimizeCompany}
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

	gen, err := llm.NewGeminiClient(ctx, cfg.Model, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer gen.Close()

	result := runner.Optimize(ctx, gen, analysis)

	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	doc := result.Text
	if optimizeFormat == "markdown" {
		doc = result.Markdown
	}

	if optimizeOut != "" {
		if err := os.WriteFile(optimizeOut, []byte(doc), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Optimized resume written to %s\n", optimizeOut)
	} else {
		fmt.Print(doc)
	}

	if optimizeLetter != "" {
		if result.CoverLetter == "" {
			fmt.Fprintln(os.Stderr, "Warning: no cover letter was produced")
		} else if err := os.WriteFile(optimizeLetter, []byte(result.CoverLetter), 0644); err != nil {
			return fmt.Errorf("failed to write cover letter file: %w", err)
		} else {
			fmt.Fprintf(os.Stdout, "Cover letter written to %s\n", optimizeLetter)
		}
	}

	fmt.Fprint(os.Stderr, "\n"+result.Report)
	return nil
}
