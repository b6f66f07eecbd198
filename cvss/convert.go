package cvss

// Conversion notes emitted for lossy or inferred mappings. Both conversion
// directions are total: they always succeed on a valid metric set and report
// every approximation through these notes.
const (
	noteATAdded     = "AT set to None, no v3 equivalent."
	noteATDropped   = "AT has no v3 equivalent and was dropped."
	noteUIToPassive = "UI:R mapped to UI:P; consider UI:A if interaction is active."
	noteUIToReq     = "UI:P/UI:A mapped to UI:R; v3 has less granularity."
	noteScopeDup    = "Scope:Changed duplicated into both Vulnerable and Subsequent impact; review appropriateness."
	noteScopeSet    = "Subsequent impact detected; Scope set to Changed."
	noteImpactMax   = "Impact metrics merged from Vulnerable and Subsequent using maximum."
)

var impactRank = map[string]int{"N": 0, "L": 1, "H": 2}

// maxImpact returns the higher of two N/L/H impact values.
func maxImpact(a, b string) string {
	if impactRank[b] > impactRank[a] {
		return b
	}
	return a
}

// V3ToV4 maps a v3 metric set onto an approximate v4 equivalent. The impact
// triad is attributed to the vulnerable system; when Scope is Changed it is
// duplicated into the subsequent-system metrics as well.
func V3ToV4(m V3Metrics) (V4Metrics, []string) {
	out := V4Metrics{
		AV: m.AV,
		AC: m.AC,
		AT: "N",
		PR: m.PR,
		VC: m.C,
		VI: m.I,
		VA: m.A,
	}
	notes := []string{noteATAdded}

	if m.UI == "N" {
		out.UI = "N"
	} else {
		out.UI = "P"
		notes = append(notes, noteUIToPassive)
	}

	if m.S == "U" {
		out.SC, out.SI, out.SA = "N", "N", "N"
	} else {
		out.SC, out.SI, out.SA = m.C, m.I, m.A
		notes = append(notes, noteScopeDup)
	}

	return out, notes
}

// V4ToV3 maps a v4 metric set back onto v3. Attack Requirements is dropped,
// Scope is inferred from the subsequent-system impacts, and each impact
// metric takes the maximum of its vulnerable and subsequent values.
func V4ToV3(m V4Metrics) (V3Metrics, []string) {
	out := V3Metrics{
		AV: m.AV,
		AC: m.AC,
		PR: m.PR,
	}
	notes := []string{noteATDropped}

	if m.UI == "N" {
		out.UI = "N"
	} else {
		out.UI = "R"
		notes = append(notes, noteUIToReq)
	}

	if m.SC != "N" || m.SI != "N" || m.SA != "N" {
		out.S = "C"
		notes = append(notes, noteScopeSet)
	} else {
		out.S = "U"
	}

	out.C = maxImpact(m.VC, m.SC)
	out.I = maxImpact(m.VI, m.SI)
	out.A = maxImpact(m.VA, m.SA)
	notes = append(notes, noteImpactMax)

	return out, notes
}
