package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-screener/internal/keywords"
	"github.com/jonathan/job-screener/internal/resume"
	"github.com/jonathan/job-screener/internal/scoring"
	"github.com/jonathan/job-screener/internal/screening"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single resume against a job description",
	Long:  "Compute the ATS score of one resume against a job description without persisting anything. Useful for spot-checking before a full screening run.",
	RunE:  runScore,
}

var (
	scoreResume   string
	scoreTextFile string
	scoreURL      string
	scoreKeywords int
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to a .pdf or .docx resume (required)")
	scoreCmd.Flags().StringVarP(&scoreTextFile, "text-file", "t", "", "Path to text file containing the job description")
	scoreCmd.Flags().StringVarP(&scoreURL, "url", "u", "", "URL to fetch the job description from")
	scoreCmd.Flags().IntVarP(&scoreKeywords, "keywords", "k", keywords.DefaultNumKeywords, "Number of keywords to score against")

	scoreCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	jdText, err := loadJobDescription(cmd.Context(), scoreTextFile, scoreURL)
	if err != nil {
		return err
	}

	cvText, err := resume.ExtractText(scoreResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	if cvText == "" {
		return fmt.Errorf("no text could be extracted from %s", scoreResume)
	}

	jdKeywords, err := keywords.Extract(jdText, scoreKeywords)
	if err != nil {
		return fmt.Errorf("failed to extract keywords: %w", err)
	}

	score := scoring.CalculateATSScore(cvText, jdKeywords)

	name := resume.ExtractName(cvText)
	if name == resume.UnknownName {
		name = resume.BaseName(scoreResume)
	}

	verdict := "below the shortlist threshold"
	if score >= screening.ShortlistThreshold {
		verdict = "qualifies for the shortlist"
	}
	fmt.Fprintf(os.Stdout, "%s scored %d and %s\n", name, score, verdict)

	return nil
}
