package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/osv-scanner/pkg/models"
	"github.com/spf13/cobra"

	"github.com/vulnmgt/cvsskit/enrich"
	"github.com/vulnmgt/cvsskit/util"
)

func enrichCmd() *cobra.Command {
	var (
		inputPath   string
		outputPath  string
		packagePurl string
		packageVer  string
	)

	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Annotate OSV advisories with CVSS base scores and severity ratings",
		Long: `Reads a single OSV advisory or an array of them from a JSON file, scores
every CVSS_V3/CVSS_V4 vector with the built-in engine and writes the advisories
back with cvss_base_score, cvss_base_scores and severity_rating filled into
database_specific. With --package (and optionally --version) only advisories
applicable to that package are kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputPath == "" {
				return fmt.Errorf("input path is required (use --input)")
			}
			if packagePurl != "" {
				if _, err := util.ParsePURL(packagePurl); err != nil {
					return fmt.Errorf("invalid package purl %q: %w", packagePurl, err)
				}
			}

			vulns, single, err := readAdvisories(inputPath)
			if err != nil {
				return err
			}

			if packagePurl != "" {
				filtered := vulns[:0]
				for i := range vulns {
					if enrich.AppliesTo(&vulns[i], packagePurl, packageVer) {
						filtered = append(filtered, vulns[i])
					}
				}
				logger.Infow("filtered advisories by package",
					"package", packagePurl, "version", packageVer,
					"kept", len(filtered), "total", len(vulns))
				vulns = filtered
			}

			for i := range vulns {
				enrich.Annotate(&vulns[i])
			}

			var payload interface{} = vulns
			if single && len(vulns) == 1 {
				payload = vulns[0]
			}
			data, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode advisories: %w", err)
			}

			if outputPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(outputPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			logger.Infow("wrote enriched advisories", "path", outputPath, "count", len(vulns))
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to an OSV advisory JSON file (single advisory or array)")
	cmd.Flags().StringVar(&outputPath, "output", "", "Path to write enriched JSON (default: stdout)")
	cmd.Flags().StringVar(&packagePurl, "package", "", "Keep only advisories affecting this package purl")
	cmd.Flags().StringVar(&packageVer, "version", "", "Package version for applicability filtering")
	cobra.CheckErr(cmd.MarkFlagFilename("input", "json"))

	return cmd
}

// readAdvisories loads one advisory or an array of advisories and reports
// which shape the file had so the output can mirror it.
func readAdvisories(path string) ([]models.Vulnerability, bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read input file: %w", err)
	}

	var list []models.Vulnerability
	if err := json.Unmarshal(content, &list); err == nil {
		return list, false, nil
	}

	var one models.Vulnerability
	if err := json.Unmarshal(content, &one); err != nil {
		return nil, false, fmt.Errorf("input is not an OSV advisory or advisory array: %w", err)
	}
	return []models.Vulnerability{one}, true, nil
}
