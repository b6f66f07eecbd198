package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vulnmgt/cvsskit/cvss"
	"github.com/vulnmgt/cvsskit/model"
)

func scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <vector>",
		Short: "Compute the base score and severity for a CVSS vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := cvss.Parse(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse vector: %w", err)
			}

			report := buildVectorReport(m)
			return emit(cmd, report, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\nCVSS %s base score: %.1f (%s)\n",
					report.Vector, report.Version, report.BaseScore, report.SeverityRating)
			})
		},
	}
}

func buildVectorReport(m cvss.MetricSet) model.VectorReport {
	score := cvss.Score(m)
	return model.VectorReport{
		Vector:         m.Vector(),
		Version:        string(m.Version()),
		BaseScore:      score,
		SeverityRating: string(cvss.SeverityFromScore(score)),
		Metrics:        m.Metrics(),
	}
}
