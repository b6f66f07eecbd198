// Package enrich annotates OSV advisories with CVSS base scores and severity
// ratings computed by the in-house engine.
package enrich

import (
	"github.com/google/osv-scanner/pkg/models"

	"github.com/vulnmgt/cvsskit/cvss"
	"github.com/vulnmgt/cvsskit/model"
	"github.com/vulnmgt/cvsskit/util"
)

// UnscoredBaseScore is assigned to advisories carrying no scorable CVSS
// vector, so downstream consumers can still sort and filter them.
const UnscoredBaseScore = 0.1

// Advisory extracts the CVSS_V3 and CVSS_V4 severity entries from an OSV
// advisory, scores each vector and reports the highest score with its
// severity rating. Unscorable advisories get the UnscoredBaseScore floor.
func Advisory(v *models.Vulnerability) model.AdvisoryScores {
	var baseScores []float64
	var highest float64

	for _, sev := range v.Severity {
		if sev.Score == "" {
			continue
		}
		switch string(sev.Type) {
		case "CVSS_V3", "CVSS_V4":
		default:
			continue
		}

		score, err := cvss.BaseScore(sev.Score)
		if err != nil || score <= 0 {
			continue
		}
		baseScores = append(baseScores, score)
		if score > highest {
			highest = score
		}
	}

	if len(baseScores) == 0 {
		highest = UnscoredBaseScore
		baseScores = []float64{UnscoredBaseScore}
	}

	return model.AdvisoryScores{
		ID:             v.ID,
		BaseScores:     baseScores,
		BaseScore:      highest,
		SeverityRating: string(cvss.SeverityFromScore(highest)),
	}
}

// Annotate writes the computed scores into the advisory's database_specific
// block under the keys the house schema expects.
func Annotate(v *models.Vulnerability) {
	scores := Advisory(v)

	if v.DatabaseSpecific == nil {
		v.DatabaseSpecific = make(map[string]interface{})
	}
	v.DatabaseSpecific["cvss_base_scores"] = scores.BaseScores
	v.DatabaseSpecific["cvss_base_score"] = scores.BaseScore
	v.DatabaseSpecific["severity_rating"] = scores.SeverityRating
}

// AppliesTo reports whether the advisory affects the package identified by
// purl at the given version. An empty version matches on package identity
// alone; otherwise the advisory's affected ranges are evaluated with
// ecosystem-aware version comparison.
func AppliesTo(v *models.Vulnerability, purl, version string) bool {
	base, err := util.GetBasePURL(purl)
	if err != nil {
		return false
	}

	for _, affected := range v.Affected {
		var affectedBase string
		if affected.Package.Purl != "" {
			affectedBase, err = util.GetBasePURL(affected.Package.Purl)
			if err != nil {
				continue
			}
		} else {
			affectedBase = util.GetBasePURLFromComponents(
				string(affected.Package.Ecosystem), "", affected.Package.Name)
		}

		if affectedBase != base {
			continue
		}
		if version == "" || util.IsVersionAffected(version, affected) {
			return true
		}
	}
	return false
}
