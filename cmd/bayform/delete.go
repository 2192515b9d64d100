package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <resume-id>",
	Short: "Delete a stored resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if err := repo.Delete(ctx, doc.ID); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted resume %s\n", doc.ID)
	return nil
}
