package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"job_url": "https://example.com/job",
		"resume_dir": "` + t.TempDir() + `",
		"num_keywords": 15,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://example.com/job", cfg.JobURL)
	assert.Equal(t, 15, cfg.NumKeywords)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_CredentialsIgnoredInFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	content := `{"APIKey": "leaked", "api_key": "leaked"}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	assert.Empty(t, cfg.APIKey)
}

func TestLoadConfig_EnvCredentials(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("EMAIL_SENDER", "hr@example.com")
	t.Setenv("EMAIL_PASSWORD", "app-password")

	cfg := FromEnv()
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "hr@example.com", cfg.EmailSender)
	assert.Equal(t, "app-password", cfg.EmailPassword)
}

func TestValidate_MutuallyExclusiveJobSources(t *testing.T) {
	jobFile := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(jobFile, []byte("a job"), 0644))

	cfg := &Config{Job: jobFile, JobURL: "https://example.com/job"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_MissingJobFile(t *testing.T) {
	cfg := &Config{Job: "/nonexistent/job.txt"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Job")
}

func TestValidate_BadURL(t *testing.T) {
	cfg := &Config{JobURL: "not a url"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JobURL")
}

func TestValidate_KeywordRange(t *testing.T) {
	cfg := &Config{NumKeywords: 200}
	err := cfg.Validate()
	require.Error(t, err)

	cfg = &Config{NumKeywords: 10}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{JobURL: "https://example.com/job"}
	merged := cfg.MergeWithDefaults(Config{
		ResumeDir:   "resumes",
		NumKeywords: 20,
	})

	assert.Equal(t, "https://example.com/job", merged.JobURL)
	assert.Equal(t, "resumes", merged.ResumeDir)
	assert.Equal(t, 20, merged.NumKeywords)
	assert.Equal(t, "job_screening.db", merged.CandidateDB)
	assert.Equal(t, "semantic_search.db", merged.SemanticDB)
}

func TestMergeWithDefaults_BuiltinFallbacks(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, 10, merged.NumKeywords)
	assert.Equal(t, "job_screening.db", merged.CandidateDB)
	assert.Equal(t, "semantic_search.db", merged.SemanticDB)
}
