// Package main provides the entry point for the job screening CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "screening_agent",
	Short: "AI-assisted job application screening",
	Long:  "Screening Agent scores resumes against a job description, shortlists qualifying candidates with interview invitations, and answers free-form recruiter prompts over previously screened candidates.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
