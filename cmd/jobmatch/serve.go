package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erizov/jobmatch/internal/llm"
	"github.com/erizov/jobmatch/internal/rewrite"
	"github.com/erizov/jobmatch/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server that exposes resume parsing, job posting analysis, and resume optimization as REST endpoints.",
	RunE:  runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}

	// Optimization is unavailable without an API key; everything else works.
	var gen rewrite.Generator
	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(context.Background(), cfg.Model, cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		defer client.Close()
		gen = client
	} else {
		fmt.Fprintln(os.Stderr, "Warning: GEMINI_API_KEY not set, /api/optimize will be unavailable")
	}

	return server.New(cfg, gen).Start()
}
