// Command cvsskit scores, converts and inspects CVSS vectors and enriches
// OSV advisories with CVSS base scores.
package main

import (
	"os"

	"github.com/vulnmgt/cvsskit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
