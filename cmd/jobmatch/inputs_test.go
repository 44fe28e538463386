package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erizov/jobmatch/internal/config"
	"github.com/erizov/jobmatch/internal/pipeline"
)

func TestJobInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   jobInput
		wantErr bool
	}{
		{"file only", jobInput{path: "job.txt"}, false},
		{"url only", jobInput{url: "https://example.com/job"}, false},
		{"neither", jobInput{}, true},
		{"both", jobInput{path: "job.txt", url: "https://example.com/job"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJobInput_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("Senior Engineer\nCompany: Globex\n"), 0644))

	cfg := config.Default()
	runner := pipeline.NewRunner(&cfg)

	in := jobInput{path: path, title: "Senior Engineer", company: "Globex"}
	text, title, company, err := in.load(context.Background(), runner)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Engineer")
	assert.Equal(t, "Senior Engineer", title)
	assert.Equal(t, "Globex", company)
}

func TestReadResume(t *testing.T) {
	_, err := readResume("")
	assert.ErrorContains(t, err, "--resume is required")

	_, err = readResume(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "failed to read resume")

	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("John Doe\n"), 0644))
	text, err := readResume(path)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", text)
}
