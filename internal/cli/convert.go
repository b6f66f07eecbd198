package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vulnmgt/cvsskit/cvss"
	"github.com/vulnmgt/cvsskit/model"
)

func convertCmd() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "convert <vector>",
		Short: "Convert a CVSS vector to the other version, with lossy-mapping notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := cvss.Parse(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse vector: %w", err)
			}

			to := target
			if to == "" {
				to = cfg.ConvertTarget
			}
			if to == "" {
				// default to the other version
				if m.Version() == cvss.V3 {
					to = string(cvss.V4)
				} else {
					to = string(cvss.V3)
				}
			}
			if to != string(cvss.V3) && to != string(cvss.V4) {
				return fmt.Errorf("unsupported conversion target: %s (expected 3.1 or 4.0)", to)
			}
			if to == string(m.Version()) {
				return fmt.Errorf("vector is already CVSS %s", to)
			}

			var converted cvss.MetricSet
			var notes []string
			switch src := m.(type) {
			case cvss.V3Metrics:
				out, n := cvss.V3ToV4(src)
				converted, notes = out, n
			case cvss.V4Metrics:
				out, n := cvss.V4ToV3(src)
				converted, notes = out, n
			}

			convertedScore := cvss.Score(converted)
			report := model.ConversionReport{
				SourceVector:      m.Vector(),
				SourceScore:       cvss.Score(m),
				ConvertedVector:   converted.Vector(),
				ConvertedScore:    convertedScore,
				ConvertedSeverity: string(cvss.SeverityFromScore(convertedScore)),
				Notes:             notes,
			}

			return emit(cmd, report, func() {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s (%.1f)\n  -> %s (%.1f, %s)\n",
					report.SourceVector, report.SourceScore,
					report.ConvertedVector, report.ConvertedScore, report.ConvertedSeverity)
				for _, note := range report.Notes {
					fmt.Fprintf(out, "  note: %s\n", note)
				}
			})
		},
	}

	cmd.Flags().StringVar(&target, "to", "", "Target CVSS version: 3.1 or 4.0 (default: the other version)")
	return cmd
}
