package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/job-screener/internal/config"
	"github.com/jonathan/job-screener/internal/fetch"
)

// loadScreeningConfig loads the optional config file and layers flag values
// on top. Flags win over file values; built-in defaults fill the rest.
func loadScreeningConfig(path string, overrides config.Config) (config.Config, error) {
	base := config.FromEnv()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		base = loaded
	}

	merged := overrides.MergeWithDefaults(*base)
	merged.APIKey = base.APIKey
	merged.EmailSender = base.EmailSender
	merged.EmailPassword = base.EmailPassword
	merged.Verbose = merged.Verbose || base.Verbose

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// loadJobDescription reads the job description from a local text file or
// fetches and extracts it from a URL. Exactly one source must be set.
func loadJobDescription(ctx context.Context, textFile, urlStr string) (string, error) {
	if textFile == "" && urlStr == "" {
		return "", fmt.Errorf("either --text-file or --url must be provided")
	}
	if textFile != "" && urlStr != "" {
		return "", fmt.Errorf("--text-file and --url are mutually exclusive; provide only one")
	}

	if textFile != "" {
		data, err := os.ReadFile(textFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return string(data), nil
	}

	text, err := fetch.JobDescription(ctx, urlStr)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job description: %w", err)
	}
	return text, nil
}

// listResumeFiles returns the supported resume files in dir in name order.
func listResumeFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".pdf", ".docx":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, fmt.Errorf("no .pdf or .docx resumes found in %s", dir)
	}
	return paths, nil
}

// resolveAPIKey prefers the flag value over the GEMINI_API_KEY environment
// variable.
func resolveAPIKey(flagValue string) (string, error) {
	apiKey := flagValue
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return "", fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}
	return apiKey, nil
}
