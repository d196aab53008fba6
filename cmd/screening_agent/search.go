package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-screener/internal/db"
	"github.com/jonathan/job-screener/internal/llm"
	"github.com/jonathan/job-screener/internal/observability"
	"github.com/jonathan/job-screener/internal/search"
	"github.com/jonathan/job-screener/internal/semantic"
)

var searchCmd = &cobra.Command{
	Use:   "search [prompt]",
	Short: "Answer a free-form recruiter prompt over screened candidates",
	Long:  "Search previously screened candidates with a natural language prompt, e.g. \"top 3 candidates with python for backend\" or \"summarize John Smith's profile\".",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var (
	searchSemanticDB string
	searchAPIKey     string
)

func init() {
	searchCmd.Flags().StringVar(&searchSemanticDB, "semantic-db", "", "Path to the semantic search database")
	searchCmd.Flags().StringVar(&searchAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	prompt := strings.Join(args, " ")

	apiKey, err := resolveAPIKey(searchAPIKey)
	if err != nil {
		return err
	}

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	engine := search.NewEngine(
		db.NewSemanticStore(searchSemanticDB),
		semantic.NewService(client),
		search.NewLLMSummarizer(client),
	)

	results, err := engine.Search(ctx, prompt)
	if err != nil {
		var noData *search.NoDataError
		var notFound *search.CandidateNotFoundError
		var noMatch *search.NoMatchError
		if errors.As(err, &noData) || errors.As(err, &notFound) || errors.As(err, &noMatch) {
			fmt.Fprintln(os.Stdout, err.Error())
			return nil
		}
		return fmt.Errorf("search failed: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintSearchResults(results)
	return nil
}
