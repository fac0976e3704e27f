// Package cmd implements the charsheet CLI commands using Cobra.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gaurav-prasanna/charsheet/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "charsheet",
	Short: "charsheet turns a Fandom character article into a filled-in character sheet",
	Long: `charsheet finds a character's article on a Fandom wiki, extracts the name,
portrait, aliases and the Personality / Appearance / Background sections,
dumps the rest of the article as Markdown and fills a Markdown template with
the result.

Usage:
  charsheet extract <name> [flags]
  charsheet serve [flags]
  charsheet templates --folder <url>`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./charsheet.yaml or ~/.config/charsheet/charsheet.yaml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log pipeline stages to stderr")

	pf.String(config.KeyUserAgent, "", "User-Agent sent to the wiki and the search endpoint")
	pf.Duration(config.KeyTimeout, 0, "HTTP timeout for page fetches")
	pf.String(config.KeyTemplate, "", "Template id or share link (default from the secrets file)")
	pf.String(config.KeyTemplateDir, "", "Directory of local templates, used when no Drive credentials are set")
	pf.String(config.KeySecretsFile, "", "TOML secrets file with [gcp_service_account] and [app_config]")
	pf.String(config.KeyCredentialsFile, "", "Service-account JSON key for Google Drive")
	pf.String(config.KeySearchURL, "", "Search endpoint (default: DuckDuckGo HTML)")

	for _, key := range []string{
		config.KeyUserAgent, config.KeyTimeout, config.KeyTemplate, config.KeyTemplateDir,
		config.KeySecretsFile, config.KeyCredentialsFile, config.KeySearchURL,
	} {
		viper.BindPFlag(key, pf.Lookup(key))
	}
}

func initConfig() {
	if err := config.Init(viper.GetViper(), cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if used := viper.ConfigFileUsed(); used != "" && verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", used)
	}
}

// loadConfig resolves and validates the settings for a command run.
func loadConfig() (config.Config, error) {
	cfg := config.Load(viper.GetViper())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger builds the CLI logger: text on w, debug level with --verbose
// and warnings only otherwise.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
