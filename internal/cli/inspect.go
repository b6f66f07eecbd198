package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vulnmgt/cvsskit/cvss"
)

// metricNames maps metric codes to their long names for text output.
var metricNames = map[string]string{
	"AV": "Attack Vector",
	"AC": "Attack Complexity",
	"AT": "Attack Requirements",
	"PR": "Privileges Required",
	"UI": "User Interaction",
	"S":  "Scope",
	"C":  "Confidentiality",
	"I":  "Integrity",
	"A":  "Availability",
	"VC": "Vulnerable System Confidentiality",
	"VI": "Vulnerable System Integrity",
	"VA": "Vulnerable System Availability",
	"SC": "Subsequent System Confidentiality",
	"SI": "Subsequent System Integrity",
	"SA": "Subsequent System Availability",
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <vector>",
		Short: "Validate a CVSS vector and print its metric breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := cvss.Parse(args[0])
			if err != nil {
				// the codec errors are worded for direct display
				return err
			}

			report := buildVectorReport(m)
			return emit(cmd, report, func() {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s (CVSS %s)\n", report.Vector, report.Version)
				// walk the canonical vector so metrics print in fixed order
				for _, seg := range strings.Split(report.Vector, "/")[1:] {
					key, value, _ := strings.Cut(seg, ":")
					fmt.Fprintf(out, "  %-34s %s:%s\n", metricNames[key], key, value)
				}
				fmt.Fprintf(out, "Base score: %.1f (%s)\n", report.BaseScore, report.SeverityRating)
			})
		},
	}
}
