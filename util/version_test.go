package util

import (
	"testing"

	"github.com/google/osv-scanner/pkg/models"
	"github.com/stretchr/testify/assert"
)

func semverRange(events ...models.Event) models.Affected {
	return models.Affected{
		Package: models.Package{Ecosystem: models.Ecosystem("Go")},
		Ranges: []models.Range{
			{Type: models.RangeSemVer, Events: events},
		},
	}
}

func TestIsVersionAffectedSemverRanges(t *testing.T) {
	affected := semverRange(
		models.Event{Introduced: "1.2.0"},
		models.Event{Fixed: "1.4.5"},
	)

	tests := []struct {
		version string
		want    bool
	}{
		{"1.1.9", false},
		{"1.2.0", true},
		{"1.3.7", true},
		{"1.4.4", true},
		{"1.4.5", false},
		{"2.0.0", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsVersionAffected(tt.version, affected), "version %s", tt.version)
	}
}

func TestIsVersionAffectedIntroducedZero(t *testing.T) {
	affected := semverRange(
		models.Event{Introduced: "0"},
		models.Event{Fixed: "2.0.0"},
	)

	assert.True(t, IsVersionAffected("0.0.1", affected))
	assert.True(t, IsVersionAffected("1.9.9", affected))
	assert.False(t, IsVersionAffected("2.0.0", affected))
}

func TestIsVersionAffectedRequiresBothBoundaries(t *testing.T) {
	// no upper boundary: treated as not affected to avoid false positives
	lowerOnly := semverRange(models.Event{Introduced: "1.0.0"})
	assert.False(t, IsVersionAffected("1.5.0", lowerOnly))

	// no lower boundary
	upperOnly := semverRange(models.Event{Fixed: "2.0.0"})
	assert.False(t, IsVersionAffected("1.5.0", upperOnly))
}

func TestIsVersionAffectedLastAffected(t *testing.T) {
	affected := semverRange(
		models.Event{Introduced: "1.0.0"},
		models.Event{LastAffected: "1.3.0"},
	)

	assert.True(t, IsVersionAffected("1.3.0", affected))
	assert.False(t, IsVersionAffected("1.3.1", affected))
}

func TestIsVersionAffectedExplicitVersions(t *testing.T) {
	affected := models.Affected{
		Versions: []string{"1.0.0", "1.0.1"},
	}

	assert.True(t, IsVersionAffected("1.0.1", affected))
	assert.False(t, IsVersionAffected("1.0.2", affected))
}

func TestIsVersionAffectedGitRangesIgnored(t *testing.T) {
	affected := models.Affected{
		Ranges: []models.Range{
			{
				Type: models.RangeGit,
				Events: []models.Event{
					{Introduced: "0"},
					{Fixed: "deadbeef"},
				},
			},
		},
	}

	assert.False(t, IsVersionAffected("1.0.0", affected))
}

func TestIsVersionAffectedNpmEcosystem(t *testing.T) {
	affected := models.Affected{
		Package: models.Package{Ecosystem: models.Ecosystem("npm")},
		Ranges: []models.Range{
			{
				Type: models.RangeEcosystem,
				Events: []models.Event{
					{Introduced: "1.0.0"},
					{Fixed: "1.2.3"},
				},
			},
		},
	}

	assert.True(t, IsVersionAffected("1.2.2", affected))
	assert.False(t, IsVersionAffected("1.2.3", affected))
}

func TestIsVersionAffectedPythonEcosystem(t *testing.T) {
	affected := models.Affected{
		Package: models.Package{Ecosystem: models.Ecosystem("PyPI")},
		Ranges: []models.Range{
			{
				Type: models.RangeEcosystem,
				Events: []models.Event{
					{Introduced: "2.0"},
					{Fixed: "2.31.0"},
				},
			},
		},
	}

	assert.True(t, IsVersionAffected("2.30.0", affected))
	assert.False(t, IsVersionAffected("2.31.0", affected))
	// PEP 440 pre-release ordering
	assert.True(t, IsVersionAffected("2.31.0rc1", affected))
}

func TestIsVersionAffectedAny(t *testing.T) {
	all := []models.Affected{
		semverRange(models.Event{Introduced: "1.0.0"}, models.Event{Fixed: "1.1.0"}),
		semverRange(models.Event{Introduced: "2.0.0"}, models.Event{Fixed: "2.1.0"}),
	}

	assert.True(t, IsVersionAffectedAny("2.0.5", all))
	assert.False(t, IsVersionAffectedAny("1.5.0", all))
}
