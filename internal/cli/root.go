// Package cli implements the cvsskit command line interface.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vulnmgt/cvsskit/util"
)

// Version is overridden at build time with -ldflags.
var Version = "0.0.0"

var logger = util.InitLogger().Sugar()

var (
	formatFlag string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:     "cvsskit",
	Short:   "CVSS vector scoring and conversion toolkit",
	Long:    `Parse, score and convert CVSS v3.1 and v4.0 vector strings, and annotate OSV advisories with CVSS base scores.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	cobra.OnInitialize(initialize)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file with output defaults")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "Output format: text or json")
	cobra.CheckErr(rootCmd.MarkPersistentFlagFilename("config", "yaml", "yml"))

	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(inspectCmd())
	rootCmd.AddCommand(enrichCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Errorw("command failed", "error", err)
		return err
	}
	return nil
}

// outputFormat resolves the effective output format: flag, then config file,
// then text.
func outputFormat() string {
	if formatFlag != "" {
		return formatFlag
	}
	if cfg.Format != "" {
		return cfg.Format
	}
	return "text"
}

// emit writes the report as JSON or hands off to the text renderer.
func emit(cmd *cobra.Command, report interface{}, text func()) error {
	switch outputFormat() {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	case "text":
		text()
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat())
	}
	return nil
}
