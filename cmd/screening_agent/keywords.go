package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-screener/internal/keywords"
	"github.com/jonathan/job-screener/internal/observability"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Extract scoring keywords from a job description",
	Long:  "Extract the highest-weighted keywords from a job description, the same terms resume scoring matches against.",
	RunE:  runKeywords,
}

var (
	keywordsTextFile string
	keywordsURL      string
	keywordsCount    int
)

func init() {
	keywordsCmd.Flags().StringVarP(&keywordsTextFile, "text-file", "t", "", "Path to text file containing the job description")
	keywordsCmd.Flags().StringVarP(&keywordsURL, "url", "u", "", "URL to fetch the job description from")
	keywordsCmd.Flags().IntVarP(&keywordsCount, "keywords", "k", keywords.DefaultNumKeywords, "Number of keywords to extract")

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, args []string) error {
	jdText, err := loadJobDescription(cmd.Context(), keywordsTextFile, keywordsURL)
	if err != nil {
		return err
	}

	extracted, err := keywords.Extract(jdText, keywordsCount)
	if err != nil {
		return fmt.Errorf("failed to extract keywords: %w", err)
	}
	if len(extracted) == 0 {
		fmt.Fprintln(os.Stdout, "No keywords found in the job description")
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintKeywords("", extracted)
	return nil
}
