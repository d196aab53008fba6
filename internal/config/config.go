// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/job-screener/internal/db"
	"github.com/jonathan/job-screener/internal/keywords"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags, and credentials come from the environment.
type Config struct {
	// Inputs
	Job       string `json:"job,omitempty" validate:"omitempty,file"`    // Path to job description text file
	JobURL    string `json:"job_url,omitempty" validate:"omitempty,url"` // URL to fetch the job description from
	ResumeDir string `json:"resume_dir,omitempty" validate:"omitempty,dir"`

	// Stores
	CandidateDB string `json:"candidate_db,omitempty"`
	SemanticDB  string `json:"semantic_db,omitempty"`

	// Behavior
	NumKeywords int  `json:"num_keywords,omitempty" validate:"omitempty,min=1,max=50"`
	Verbose     bool `json:"verbose,omitempty"`

	// Credentials, environment-only. Never read from the config file so a
	// shared config never carries secrets.
	APIKey        string `json:"-"`
	EmailSender   string `json:"-" validate:"omitempty,email"`
	EmailPassword string `json:"-"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	cfg.loadEnv()
	return &cfg, nil
}

// FromEnv builds a configuration from environment variables alone, for runs
// without a config file.
func FromEnv() *Config {
	cfg := &Config{}
	cfg.loadEnv()
	return cfg
}

func (c *Config) loadEnv() {
	c.APIKey = os.Getenv("GEMINI_API_KEY")
	c.EmailSender = os.Getenv("EMAIL_SENDER")
	c.EmailPassword = os.Getenv("EMAIL_PASSWORD")
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			field := errs[0]
			return fmt.Errorf("config error: field %q failed %q validation", field.Field(), field.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults, then from built-in fallbacks. CLI flag values should be merged by
// the caller before calling this.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.ResumeDir == "" {
		result.ResumeDir = defaults.ResumeDir
	}
	if result.CandidateDB == "" {
		result.CandidateDB = defaults.CandidateDB
	}
	if result.SemanticDB == "" {
		result.SemanticDB = defaults.SemanticDB
	}
	if result.NumKeywords == 0 {
		result.NumKeywords = defaults.NumKeywords
	}

	if result.CandidateDB == "" {
		result.CandidateDB = db.DefaultCandidateDBPath
	}
	if result.SemanticDB == "" {
		result.SemanticDB = db.DefaultSemanticDBPath
	}
	if result.NumKeywords == 0 {
		result.NumKeywords = keywords.DefaultNumKeywords
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
