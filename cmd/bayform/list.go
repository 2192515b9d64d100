package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored resumes",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
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

	docs, err := repo.List(ctx)
	if err != nil {
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No resumes stored.")
		return nil
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-38s %-20s %-24s %s\n", "ID", "NAME", "FULL NAME", "UPDATED")
	for _, doc := range docs {
		updated := ""
		if !doc.UpdatedAt.IsZero() {
			updated = doc.UpdatedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%-38s %-20s %-24s %s\n", doc.ID, doc.Name, doc.PersonalInfo.FullName, updated)
	}
	return nil
}
