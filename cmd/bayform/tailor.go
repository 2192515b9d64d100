package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/c7harry/bayform/internal/tailor"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor <resume-id>",
	Short: "Compare a resume against a job posting",
	Long:  "Extracts the most frequent keywords from a job posting and reports which ones the resume's skills already cover.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTailor,
}

var (
	tailorURL   string
	tailorFile  string
	tailorLimit int
)

func init() {
	tailorCmd.Flags().StringVarP(&tailorURL, "url", "u", "", "Job posting URL to fetch")
	tailorCmd.Flags().StringVarP(&tailorFile, "file", "f", "", "Path to a job posting text file")
	tailorCmd.Flags().IntVar(&tailorLimit, "limit", tailor.DefaultKeywordLimit, "Maximum keywords to consider")

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if tailorURL != "" && tailorFile != "" {
		return fmt.Errorf("--url and --file are mutually exclusive")
	}
	if tailorURL == "" && tailorFile == "" {
		return fmt.Errorf("either --url or --file is required")
	}

	ctx := cmd.Context()
	repo, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = repo.Close() }()

	doc, err := lookupResume(ctx, repo, args[0])
	if err != nil {
		return err
	}

	var text string
	if tailorURL != "" {
		text, err = tailor.FetchPosting(ctx, tailorURL)
		if err != nil {
			return err
		}
	} else {
		data, err := os.ReadFile(tailorFile)
		if err != nil {
			return fmt.Errorf("failed to read posting file: %w", err)
		}
		text = string(data)
	}

	report := tailor.Analyze(*doc, text, tailorLimit)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Matched keywords (%d):\n", len(report.Matched))
	for _, kw := range report.Matched {
		fmt.Fprintf(w, "  %-24s x%d\n", kw.Term, kw.Count)
	}
	fmt.Fprintf(w, "\nMissing keywords (%d):\n", len(report.Missing))
	for _, kw := range report.Missing {
		fmt.Fprintf(w, "  %-24s x%d\n", kw.Term, kw.Count)
	}
	return nil
}
