package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-screener/internal/config"
	"github.com/jonathan/job-screener/internal/db"
	"github.com/jonathan/job-screener/internal/jd"
	"github.com/jonathan/job-screener/internal/llm"
	"github.com/jonathan/job-screener/internal/notify"
	"github.com/jonathan/job-screener/internal/observability"
	"github.com/jonathan/job-screener/internal/screening"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Screen a directory of resumes against a job description",
	Long:  "Screen every resume in a directory against a job description, persist qualifying candidates, record all candidates for later search, and optionally email interview invitations to shortlisted candidates.",
	RunE:  runScreen,
}

var (
	screenTextFile    string
	screenURL         string
	screenResumeDir   string
	screenConfigPath  string
	screenCandidateDB string
	screenSemanticDB  string
	screenKeywords    int
	screenSendEmail   bool
	screenAPIKey      string
	screenVerbose     bool
)

func init() {
	screenCmd.Flags().StringVarP(&screenTextFile, "text-file", "t", "", "Path to text file containing the job description")
	screenCmd.Flags().StringVarP(&screenURL, "url", "u", "", "URL to fetch the job description from")
	screenCmd.Flags().StringVarP(&screenResumeDir, "resumes", "r", "", "Directory of .pdf/.docx resumes (required)")
	screenCmd.Flags().StringVarP(&screenConfigPath, "config", "c", "", "Path to JSON config file")
	screenCmd.Flags().StringVar(&screenCandidateDB, "db", "", "Path to the candidate database")
	screenCmd.Flags().StringVar(&screenSemanticDB, "semantic-db", "", "Path to the semantic search database")
	screenCmd.Flags().IntVarP(&screenKeywords, "keywords", "k", 0, "Number of keywords extracted from the job description")
	screenCmd.Flags().BoolVar(&screenSendEmail, "send-email", false, "Email interview invitations to shortlisted candidates")
	screenCmd.Flags().StringVar(&screenAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	screenCmd.Flags().BoolVarP(&screenVerbose, "verbose", "v", false, "Print detailed progress information")

	screenCmd.MarkFlagRequired("resumes")

	rootCmd.AddCommand(screenCmd)
}

func runScreen(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadScreeningConfig(screenConfigPath, config.Config{
		Job:         screenTextFile,
		JobURL:      screenURL,
		ResumeDir:   screenResumeDir,
		CandidateDB: screenCandidateDB,
		SemanticDB:  screenSemanticDB,
		NumKeywords: screenKeywords,
		Verbose:     screenVerbose,
	})
	if err != nil {
		return err
	}

	apiKey, err := resolveAPIKey(screenAPIKey)
	if err != nil {
		return err
	}

	jdText, err := loadJobDescription(ctx, cfg.Job, cfg.JobURL)
	if err != nil {
		return err
	}

	resumePaths, err := listResumeFiles(cfg.ResumeDir)
	if err != nil {
		return err
	}

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	jobRole, err := jd.ExtractJobRole(ctx, client, jdText)
	if err != nil {
		return fmt.Errorf("failed to determine job role: %w", err)
	}

	var notifier screening.Notifier
	if screenSendEmail {
		if cfg.EmailSender == "" || cfg.EmailPassword == "" {
			return fmt.Errorf("email sending requires EMAIL_SENDER and EMAIL_PASSWORD environment variables")
		}
		sender := notify.NewSMTPSender(notify.DefaultSMTPHost, notify.DefaultSMTPPort, cfg.EmailSender, cfg.EmailPassword)
		notifier = notify.NewDispatcher(client, sender)
	}

	var progress screening.ProgressFunc
	if cfg.Verbose {
		progress = func(event screening.ProgressEvent) {
			fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", event.RunID[:8], event.Stage, event.Message)
		}
	}

	pipeline := screening.NewPipeline(
		db.NewCandidateStore(cfg.CandidateDB),
		db.NewSemanticStore(cfg.SemanticDB),
		notifier,
		progress,
	)
	pipeline.SetNumKeywords(cfg.NumKeywords)

	outcomes, err := pipeline.Run(ctx, jdText, jobRole, resumePaths)
	if err != nil {
		return fmt.Errorf("screening failed: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintOutcomes(outcomes)
	return nil
}
