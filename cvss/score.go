package cvss

import "math"

// CVSS v3.1 metric weights, from the specification.
var (
	v3AttackVector     = map[string]float64{"N": 0.85, "A": 0.62, "L": 0.55, "P": 0.20}
	v3AttackComplexity = map[string]float64{"L": 0.77, "H": 0.44}
	v3UserInteraction  = map[string]float64{"N": 0.85, "R": 0.62}
	v3Impact           = map[string]float64{"N": 0, "L": 0.22, "H": 0.56}

	// Privileges Required depends on Scope; outer key is the Scope value.
	v3PrivilegesRequired = map[string]map[string]float64{
		"U": {"N": 0.85, "L": 0.62, "H": 0.27},
		"C": {"N": 0.85, "L": 0.68, "H": 0.50},
	}
)

// CVSS v4.0 weights for the simplified approximation.
var (
	v4AttackVector       = map[string]float64{"N": 0.85, "A": 0.62, "L": 0.55, "P": 0.20}
	v4AttackComplexity   = map[string]float64{"L": 0.77, "H": 0.44}
	v4AttackRequirements = map[string]float64{"N": 1.00, "P": 0.80}
	v4PrivilegesRequired = map[string]float64{"N": 0.85, "L": 0.62, "H": 0.27}
	v4UserInteraction    = map[string]float64{"N": 0.85, "P": 0.70, "A": 0.62}
	v4Impact             = map[string]float64{"N": 0, "L": 0.22, "H": 0.56}
)

// roundUp rounds to one decimal place, always toward positive infinity,
// as required by the CVSS specification.
func roundUp(score float64) float64 {
	return math.Ceil(score*10) / 10
}

// ScoreV3 computes the CVSS v3.1 base score from a complete v3 metric set.
func ScoreV3(m V3Metrics) float64 {
	iss := 1 - (1-v3Impact[m.C])*(1-v3Impact[m.I])*(1-v3Impact[m.A])

	var impact float64
	if m.S == "U" {
		impact = 6.42 * iss
	} else {
		impact = 7.52*(iss-0.029) - 3.25*math.Pow(iss-0.02, 15)
	}

	exploitability := 8.22 * v3AttackVector[m.AV] * v3AttackComplexity[m.AC] *
		v3PrivilegesRequired[m.S][m.PR] * v3UserInteraction[m.UI]

	if impact <= 0 {
		return 0
	}
	var base float64
	if m.S == "U" {
		base = math.Min(impact+exploitability, 10)
	} else {
		base = math.Min(1.08*(impact+exploitability), 10)
	}
	return roundUp(base)
}

// ScoreV4 computes an approximate CVSS v4.0 base score from a complete v4
// metric set. This is a closed-form weighted formula, not the official
// macrovector lookup algorithm; scores can differ from the official
// calculator.
func ScoreV4(m V4Metrics) float64 {
	exploitability := 8.22 * v4AttackVector[m.AV] * v4AttackComplexity[m.AC] *
		v4AttackRequirements[m.AT] * v4PrivilegesRequired[m.PR] * v4UserInteraction[m.UI]

	vulnImpact := 1 - (1-v4Impact[m.VC])*(1-v4Impact[m.VI])*(1-v4Impact[m.VA])
	subImpact := 1 - (1-v4Impact[m.SC])*(1-v4Impact[m.SI])*(1-v4Impact[m.SA])

	impact := 6.42 * math.Max(vulnImpact, subImpact)

	return roundUp(math.Min(impact+exploitability, 10))
}
