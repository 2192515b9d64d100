package main

import (
	"github.com/spf13/cobra"

	"github.com/c7harry/bayform/internal/observability"
)

var showCmd = &cobra.Command{
	Use:   "show <resume-id>",
	Short: "Show a summary of a stored resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
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

	observability.NewPrinter(cmd.OutOrStdout()).PrintResumeSummary(doc)
	return nil
}
