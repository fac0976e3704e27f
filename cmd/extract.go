package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gaurav-prasanna/charsheet/config"
	"github.com/gaurav-prasanna/charsheet/core"
	"github.com/gaurav-prasanna/charsheet/core/output"
	"github.com/gaurav-prasanna/charsheet/core/pipeline"
	"github.com/gaurav-prasanna/charsheet/core/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flag variables.
var (
	flagURL      string
	flagFile     string
	flagPDF      bool
	flagMarkdown bool
	flagJSON     bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [character name]",
	Short: "Build a character sheet from a wiki article",
	Long: `Extract finds the character's wiki article (or uses --url), pulls the
character fields out of it and fills the template with them.

Examples:
  charsheet extract Monkey D. Luffy
  charsheet extract --url https://onepiece.fandom.com/wiki/Nami --json
  charsheet extract Zoro --template templates/short.md --file zoro --output_dir ./out`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&flagURL, "url", "", "Article URL; skips the search")
	extractCmd.Flags().StringVar(&flagFile, "file", "", "Output file name (default: the character's name)")

	// Output format flags (mutually exclusive).
	extractCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")
	extractCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown (default)")
	extractCmd.Flags().BoolVar(&flagJSON, "json", false, "Output structured JSON")

	extractCmd.Flags().String(config.KeyOutputDir, "", "Output directory (default: current directory)")
	viper.BindPFlag(config.KeyOutputDir, extractCmd.Flags().Lookup(config.KeyOutputDir))
}

func runExtract(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" && flagURL == "" {
		return errors.New("a character name or --url is required")
	}

	if err := validateFlags(); err != nil {
		return err
	}
	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(os.Stderr)
	ctx := cmd.Context()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	templateID := cfg.DefaultTemplate(a.secrets)
	if templateID == "" {
		return fmt.Errorf("no template configured: pass --%s or set app_config.fandom_template in %s",
			config.KeyTemplate, cfg.SecretsFile)
	}

	writer, err := output.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	result, err := a.runner.Run(ctx, pipeline.Request{
		Query:      query,
		URL:        flagURL,
		TemplateID: templateID,
	})
	if err != nil {
		return err
	}

	data, err := renderer.Render(result.Document, result.Character)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	path, err := writer.Write(outputName(flagFile, result.Character), data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// outputName prefers the user's file name, then the character's name.
func outputName(file string, c *core.Character) string {
	if strings.TrimSpace(file) != "" {
		return file
	}
	if c.Name != core.Unknown {
		return c.Name
	}
	return ""
}

// validateFlags checks that at most one output format is chosen.
func validateFlags() error {
	formatCount := 0
	for _, set := range []bool{flagPDF, flagMarkdown, flagJSON} {
		if set {
			formatCount++
		}
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}
	return nil
}

// selectRenderer creates the Renderer chosen by the format flags.
func selectRenderer() (core.Renderer, error) {
	switch {
	case flagJSON:
		return render.ForFormat("json")
	case flagPDF:
		return render.ForFormat("pdf")
	default:
		return render.ForFormat("markdown")
	}
}
