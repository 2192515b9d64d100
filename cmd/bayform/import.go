package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/c7harry/bayform/internal/types"
	"github.com/c7harry/bayform/schemas"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import a resume document from a JSON file",
	Long:  "Validates a resume JSON file against the document schema and stores it in the repository.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var importName string

func init() {
	importCmd.Flags().StringVarP(&importName, "name", "n", "", "Name to store the resume under (defaults to the document's name field)")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	if err := schemas.ValidateResume(data); err != nil {
		return err
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to unmarshal resume JSON: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("resume failed validation: %w", err)
	}

	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if importName != "" {
		doc.Name = importName
	}

	ctx := cmd.Context()
	repo, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = repo.Close() }()

	if err := repo.Put(ctx, doc); err != nil {
		return err
	}

	logger.Info("imported resume", "id", doc.ID, "name", doc.Name)
	fmt.Fprintln(cmd.OutOrStdout(), doc.ID)
	return nil
}
