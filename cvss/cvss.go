// Package cvss parses, scores and converts CVSS v3.1 and v4.0 vector strings.
//
// The v3.1 base score follows the published specification formulas. The v4.0
// score is a simplified closed-form approximation using flat metric weights;
// it is NOT the official macrovector lookup-table algorithm and should not be
// used where standards compliance is required.
//
// All operations are pure functions over immutable metric values and are safe
// for concurrent use.
package cvss

// Version identifies which CVSS revision a metric set belongs to. Vectors
// tagged CVSS:3.0 are accepted on input and normalized to V3.
type Version string

const (
	// V3 covers CVSS 3.0 and 3.1 vectors, both scored with 3.1 semantics.
	V3 Version = "3.1"
	// V4 covers CVSS 4.0 vectors.
	V4 Version = "4.0"
)

// MetricSet is a fully populated set of base metrics for one CVSS version.
// A MetricSet obtained from Parse or a conversion is always complete and
// legal; scoring and serialization never fail on it.
type MetricSet interface {
	// Version reports the CVSS revision of the metric set.
	Version() Version
	// Vector renders the canonical vector string, metrics in fixed order.
	Vector() string
	// Metrics returns the metric codes and their single-letter values.
	Metrics() map[string]string
}

// Score computes the base score for a metric set of either version.
func Score(m MetricSet) float64 {
	switch mm := m.(type) {
	case V3Metrics:
		return ScoreV3(mm)
	case *V3Metrics:
		return ScoreV3(*mm)
	case V4Metrics:
		return ScoreV4(mm)
	case *V4Metrics:
		return ScoreV4(*mm)
	}
	return 0
}

// BaseScore parses a vector string and returns its base score.
func BaseScore(vector string) (float64, error) {
	m, err := Parse(vector)
	if err != nil {
		return 0, err
	}
	return Score(m), nil
}
