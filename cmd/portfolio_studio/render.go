package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-studio/internal/app"
	"github.com/jonathan/portfolio-studio/internal/config"
	"github.com/jonathan/portfolio-studio/internal/rendering"
	"github.com/jonathan/portfolio-studio/internal/store"
	"github.com/jonathan/portfolio-studio/internal/synthesis"
	"github.com/jonathan/portfolio-studio/internal/types"
	"github.com/jonathan/portfolio-studio/internal/validation"
)

var renderCommand = &cobra.Command{
	Use:   "render",
	Short: "Render a stored profile to an HTML portfolio",
	RunE:  runRenderCmd,
}

var (
	renderEmail    string
	renderTemplate string
	renderPreview  bool
	renderOutput   string
)

func init() {
	renderCommand.Flags().StringVar(&renderEmail, "email", "", "Email of the stored profile to render")
	renderCommand.Flags().StringVarP(&renderTemplate, "template", "t", synthesis.TemplateModern, "Portfolio template id")
	renderCommand.Flags().BoolVar(&renderPreview, "preview", false, "Render sample data instead of a stored profile")
	renderCommand.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file (defaults to stdout)")

	rootCmd.AddCommand(renderCommand)
}

func runRenderCmd(cmd *cobra.Command, _ []string) error {
	data, err := resolveTemplateData(cmd, renderEmail, renderTemplate, renderPreview)
	if err != nil {
		return err
	}

	html, err := rendering.Render(renderTemplate, data)
	if err != nil {
		return err
	}

	violations, err := validation.CheckDocument(html)
	if err != nil {
		return err
	}
	for _, v := range violations {
		fmt.Fprintf(os.Stderr, "warning: %s\n", v)
	}

	if renderOutput == "" {
		fmt.Println(html)
		return nil
	}
	if err := os.WriteFile(renderOutput, []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	fmt.Printf("Wrote %s\n", renderOutput)
	return nil
}

// resolveTemplateData produces the data a template run should use: sample
// data in preview mode, the stored profile otherwise. A stored profile must
// be complete before it renders.
func resolveTemplateData(cmd *cobra.Command, email, templateID string, preview bool) (types.TemplateData, error) {
	if !rendering.Has(templateID) {
		return types.TemplateData{}, &rendering.UnknownTemplateError{TemplateID: templateID}
	}
	if preview {
		return synthesis.DummyData(templateID), nil
	}
	if email == "" {
		return types.TemplateData{}, fmt.Errorf("--email is required unless --preview is set")
	}

	cfg, err := config.Load()
	if err != nil {
		return types.TemplateData{}, fmt.Errorf("failed to load config: %w", err)
	}

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		return types.TemplateData{}, fmt.Errorf("failed to open profile store: %w", err)
	}
	defer st.Close()

	profile, err := st.Load(cmd.Context(), app.UserIDForEmail(email))
	if err != nil {
		return types.TemplateData{}, fmt.Errorf("loading profile for %s: %w", email, err)
	}

	if missing := synthesis.MissingSections(profile); len(missing) > 0 {
		return types.TemplateData{}, fmt.Errorf(
			"profile is incomplete (missing: %s); finish it or use --preview",
			strings.Join(missing, ", "))
	}

	return synthesis.FromProfile(profile), nil
}
