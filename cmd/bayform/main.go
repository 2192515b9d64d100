// Package main provides the entry point for the BayForm resume renderer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bayform",
	Short: "BayForm resume renderer",
	Long:  "BayForm renders stored resume documents into LaTeX source, PDF files and terminal previews, with keyword tailoring against job postings.",
}

var (
	rootConfigFile string
	rootVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootConfigFile, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
