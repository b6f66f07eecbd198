package util

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	npm "github.com/aquasecurity/go-npm-version/pkg"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/google/osv-scanner/pkg/models"
)

// IsVersionAffectedAny checks if a version is affected by any of the provided
// affected entries
func IsVersionAffectedAny(version string, allAffected []models.Affected) bool {
	for _, affected := range allAffected {
		if IsVersionAffected(version, affected) {
			return true
		}
	}
	return false
}

// IsVersionAffected checks if a version is affected by an OSV affected entry,
// using ecosystem-specific version parsers for accurate comparison
func IsVersionAffected(version string, affected models.Affected) bool {
	for _, v := range affected.Versions {
		if version == v {
			return true
		}
	}

	for _, vrange := range affected.Ranges {
		// only SEMVER and ECOSYSTEM ranges carry comparable versions
		if vrange.Type != models.RangeEcosystem && vrange.Type != models.RangeSemVer {
			continue
		}
		if versionMatchesRange(version, vrange, string(affected.Package.Ecosystem)) {
			return true
		}
	}
	return false
}

func versionMatchesRange(version string, vrange models.Range, ecosystem string) bool {
	switch strings.ToLower(ecosystem) {
	case "npm":
		if v, err := npm.NewVersion(version); err == nil {
			return versionInRange(v, npm.NewVersion, vrange)
		}
	case "pypi":
		if v, err := pep440.Parse(version); err == nil {
			return versionInRange(v, pep440.Parse, vrange)
		}
	default:
		if v, err := semver.NewVersion(version); err == nil {
			return versionInRange(v, semver.NewVersion, vrange)
		}
	}
	// unparseable versions fall back to plain string comparison
	return stringVersionInRange(version, vrange)
}

// versionInRange evaluates an OSV range with a typed version parser. A range
// must carry both a lower boundary (introduced) and an upper boundary (fixed
// or last_affected); incomplete ranges are treated as not affected to avoid
// false positives. OSV uses introduced "0" for "from the beginning".
func versionInRange[T interface {
	LessThan(T) bool
	GreaterThan(T) bool
}](v T, parse func(string) (T, error), vrange models.Range) bool {
	var introduced, fixed, lastAffected *T

	set := func(dst **T, raw, label string) {
		if raw == "0" {
			raw = "0.0.0"
		}
		if parsed, err := parse(raw); err == nil {
			*dst = &parsed
		} else {
			logger.Warnf("skipping unparseable %s version %q: %v", label, raw, err)
		}
	}

	for _, event := range vrange.Events {
		if event.Introduced != "" {
			set(&introduced, event.Introduced, "introduced")
		}
		if event.Fixed != "" {
			set(&fixed, event.Fixed, "fixed")
		}
		if event.LastAffected != "" {
			set(&lastAffected, event.LastAffected, "last_affected")
		}
	}

	if introduced == nil || (fixed == nil && lastAffected == nil) {
		return false
	}

	if v.LessThan(*introduced) {
		return false
	}
	if fixed != nil && !v.LessThan(*fixed) {
		return false
	}
	if lastAffected != nil && v.GreaterThan(*lastAffected) {
		return false
	}
	return true
}

// stringVersionInRange is the lexical fallback for versions no parser accepts.
// The same both-boundaries rule applies.
func stringVersionInRange(version string, vrange models.Range) bool {
	hasIntroduced, hasUpper := false, false
	for _, event := range vrange.Events {
		if event.Introduced != "" {
			hasIntroduced = true
		}
		if event.Fixed != "" || event.LastAffected != "" {
			hasUpper = true
		}
	}
	if !hasIntroduced || !hasUpper {
		return false
	}

	for _, event := range vrange.Events {
		if event.Introduced != "" && event.Introduced != "0" && version < event.Introduced {
			return false
		}
		if event.Fixed != "" && version >= event.Fixed {
			return false
		}
		if event.LastAffected != "" && version > event.LastAffected {
			return false
		}
	}
	return true
}
