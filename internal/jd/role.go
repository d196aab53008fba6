// Package jd derives structured information from a job description.
package jd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/job-screener/internal/llm"
	"github.com/jonathan/job-screener/internal/prompts"
)

// maxRoleInputChars bounds the text sent to the model; job role information
// sits at the top of a posting.
const maxRoleInputChars = 4000

// roleSchema validates the model's structured output before it is trusted.
const roleSchema = `{
	"type": "object",
	"properties": {
		"job_role": {"type": "string", "minLength": 1}
	},
	"required": ["job_role"],
	"additionalProperties": false
}`

// Generator produces structured JSON from a prompt.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

type roleResponse struct {
	JobRole string `json:"job_role"`
}

// ExtractJobRole asks the model for the job title of jdText and validates
// the response against a JSON schema before returning it.
func ExtractJobRole(ctx context.Context, gen Generator, jdText string) (string, error) {
	text := jdText
	if len(text) > maxRoleInputChars {
		text = text[:maxRoleInputChars]
	}

	template, err := prompts.Get("screening.json", "extract-job-role")
	if err != nil {
		return "", err
	}
	prompt := prompts.Format(template, map[string]string{"JDText": text})

	raw, err := gen.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", fmt.Errorf("failed to extract job role: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(roleSchema),
		gojsonschema.NewStringLoader(raw),
	)
	if err != nil {
		return "", fmt.Errorf("failed to validate job role response: %w", err)
	}
	if !result.Valid() {
		var issues []string
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return "", fmt.Errorf("job role response failed schema validation: %s", strings.Join(issues, "; "))
	}

	var parsed roleResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return "", fmt.Errorf("failed to parse job role response: %w", err)
	}
	return strings.TrimSpace(parsed.JobRole), nil
}
