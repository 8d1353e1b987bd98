package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-studio/internal/app"
	"github.com/jonathan/portfolio-studio/internal/config"
	"github.com/jonathan/portfolio-studio/internal/observability"
	"github.com/jonathan/portfolio-studio/internal/store"
)

var profileCommand = &cobra.Command{
	Use:   "profile",
	Short: "Inspect or reset stored profiles",
}

var profileShowCommand = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile for an email address",
	RunE:  runProfileShowCmd,
}

var profileClearCommand = &cobra.Command{
	Use:   "clear",
	Short: "Delete the stored profile and cached exports for an email address",
	RunE:  runProfileClearCmd,
}

var (
	profileEmail string
	profileJSON  bool
)

func init() {
	profileShowCommand.Flags().StringVar(&profileEmail, "email", "", "Email of the stored profile")
	profileShowCommand.Flags().BoolVar(&profileJSON, "json", false, "Print the raw profile record as JSON")
	_ = profileShowCommand.MarkFlagRequired("email")

	profileClearCommand.Flags().StringVar(&profileEmail, "email", "", "Email of the stored profile")
	_ = profileClearCommand.MarkFlagRequired("email")

	profileCommand.AddCommand(profileShowCommand)
	profileCommand.AddCommand(profileClearCommand)
	rootCmd.AddCommand(profileCommand)
}

func openStore() (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	st, err := store.Open(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile store: %w", err)
	}
	return st, nil
}

func runProfileShowCmd(cmd *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	profile, err := st.Load(cmd.Context(), app.UserIDForEmail(profileEmail))
	if err != nil {
		return fmt.Errorf("loading profile for %s: %w", profileEmail, err)
	}

	if profileJSON {
		encoded, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintProfileSummary(profile)
	printer.PrintCompletionReport(profile)
	return nil
}

func runProfileClearCmd(cmd *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Clear(cmd.Context(), app.UserIDForEmail(profileEmail)); err != nil {
		return fmt.Errorf("clearing profile for %s: %w", profileEmail, err)
	}
	fmt.Printf("Cleared stored data for %s\n", profileEmail)
	return nil
}
