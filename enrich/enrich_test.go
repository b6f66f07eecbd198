package enrich

import (
	"testing"

	"github.com/google/osv-scanner/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvisoryPicksHighestScore(t *testing.T) {
	v := &models.Vulnerability{
		ID: "CVE-2024-1234",
		Severity: []models.Severity{
			{Type: models.SeverityType("CVSS_V3"), Score: "CVSS:3.1/AV:L/AC:H/PR:H/UI:R/S:C/C:L/I:L/A:L"},
			{Type: models.SeverityType("CVSS_V3"), Score: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H"},
		},
	}

	scores := Advisory(v)

	assert.Equal(t, "CVE-2024-1234", scores.ID)
	require.Len(t, scores.BaseScores, 2)
	assert.InDelta(t, 9.8, scores.BaseScore, 1e-9)
	assert.Equal(t, "CRITICAL", scores.SeverityRating)
}

func TestAdvisoryHandlesV4AndV30Vectors(t *testing.T) {
	v := &models.Vulnerability{
		ID: "GHSA-xxxx-yyyy",
		Severity: []models.Severity{
			{Type: models.SeverityType("CVSS_V4"), Score: "CVSS:4.0/AV:N/AC:L/AT:P/PR:N/UI:N/VC:H/VI:H/VA:H/SC:N/SI:N/SA:N"},
			{Type: models.SeverityType("CVSS_V3"), Score: "CVSS:3.0/AV:P/AC:H/PR:H/UI:R/S:U/C:L/I:N/A:N"},
		},
	}

	scores := Advisory(v)

	require.Len(t, scores.BaseScores, 2)
	assert.InDelta(t, 9.0, scores.BaseScore, 1e-9)
	assert.Equal(t, "CRITICAL", scores.SeverityRating)
}

func TestAdvisoryFloorsUnscored(t *testing.T) {
	tests := []struct {
		name string
		vuln models.Vulnerability
	}{
		{name: "no severity entries", vuln: models.Vulnerability{ID: "A"}},
		{
			name: "only cvss v2",
			vuln: models.Vulnerability{
				ID: "B",
				Severity: []models.Severity{
					{Type: models.SeverityType("CVSS_V2"), Score: "AV:N/AC:L/Au:N/C:C/I:C/A:C"},
				},
			},
		},
		{
			name: "unparseable vector",
			vuln: models.Vulnerability{
				ID: "C",
				Severity: []models.Severity{
					{Type: models.SeverityType("CVSS_V3"), Score: "not-a-vector"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := Advisory(&tt.vuln)
			assert.Equal(t, []float64{UnscoredBaseScore}, scores.BaseScores)
			assert.InDelta(t, UnscoredBaseScore, scores.BaseScore, 1e-9)
			assert.Equal(t, "LOW", scores.SeverityRating)
		})
	}
}

func TestAnnotateWritesDatabaseSpecific(t *testing.T) {
	v := &models.Vulnerability{
		ID: "CVE-2024-5678",
		Severity: []models.Severity{
			{Type: models.SeverityType("CVSS_V3"), Score: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H"},
		},
	}

	Annotate(v)

	require.NotNil(t, v.DatabaseSpecific)
	assert.InDelta(t, 9.8, v.DatabaseSpecific["cvss_base_score"].(float64), 1e-9)
	assert.Equal(t, "CRITICAL", v.DatabaseSpecific["severity_rating"])
	assert.Len(t, v.DatabaseSpecific["cvss_base_scores"].([]float64), 1)
}

func TestAppliesTo(t *testing.T) {
	v := &models.Vulnerability{
		ID: "GHSA-pppp-qqqq",
		Affected: []models.Affected{
			{
				Package: models.Package{
					Ecosystem: models.Ecosystem("npm"),
					Name:      "lodash",
					Purl:      "pkg:npm/lodash",
				},
				Ranges: []models.Range{
					{
						Type: models.RangeSemVer,
						Events: []models.Event{
							{Introduced: "0"},
							{Fixed: "4.17.21"},
						},
					},
				},
			},
		},
	}

	tests := []struct {
		name    string
		purl    string
		version string
		want    bool
	}{
		{"affected version", "pkg:npm/lodash", "4.17.20", true},
		{"fixed version", "pkg:npm/lodash", "4.17.21", false},
		{"versioned purl normalized to base", "pkg:npm/lodash@4.17.20", "4.17.20", true},
		{"different package", "pkg:npm/underscore", "1.0.0", false},
		{"package identity only", "pkg:npm/lodash", "", true},
		{"invalid purl", "not-a-purl", "1.0.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AppliesTo(v, tt.purl, tt.version))
		})
	}
}

func TestAppliesToWithoutPurlFallsBackToEcosystem(t *testing.T) {
	v := &models.Vulnerability{
		Affected: []models.Affected{
			{
				Package: models.Package{
					Ecosystem: models.Ecosystem("PyPI"),
					Name:      "requests",
				},
				Versions: []string{"2.31.0"},
			},
		},
	}

	assert.True(t, AppliesTo(v, "pkg:pypi/requests", "2.31.0"))
	assert.False(t, AppliesTo(v, "pkg:pypi/requests", "2.32.0"))
}
