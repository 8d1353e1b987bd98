// Package main provides the entry point for the Portfolio Studio server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio_studio",
	Short: "Portfolio Studio server and tools",
	Long:  "Portfolio Studio turns a locally stored profile into a rendered portfolio site, with template selection, sample-data preview and PDF export.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
