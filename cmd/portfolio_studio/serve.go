package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-studio/internal/config"
	"github.com/jonathan/portfolio-studio/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the Portfolio Studio HTTP server",
	Long:  "Starts the HTTP API the editor UI talks to. Configuration comes from environment variables; flags override them.",
	RunE:  runServeCmd,
}

var (
	servePort    int
	serveDataDir string
	serveAPIKey  string
)

func init() {
	serveCommand.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (defaults to PORTFOLIO_PORT)")
	serveCommand.Flags().StringVar(&serveDataDir, "data-dir", "", "Directory for the profile database (defaults to PORTFOLIO_DATA_DIR)")
	serveCommand.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API key for writing assistance (defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(serveCommand)
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = serveDataDir
	}
	if cmd.Flags().Changed("api-key") {
		cfg.GeminiAPIKey = serveAPIKey
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:         cfg.Port,
		DataDir:      cfg.DataDir,
		GeminiAPIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
