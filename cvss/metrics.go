package cvss

import "strings"

// metricDef pairs a metric code with its legal single-letter values.
type metricDef struct {
	key    string
	values string
}

// Metric order is fixed for serialization and validation.
var v3Order = []metricDef{
	{"AV", "NALP"},
	{"AC", "LH"},
	{"PR", "NLH"},
	{"UI", "NR"},
	{"S", "UC"},
	{"C", "NLH"},
	{"I", "NLH"},
	{"A", "NLH"},
}

var v4Order = []metricDef{
	{"AV", "NALP"},
	{"AC", "LH"},
	{"AT", "NP"},
	{"PR", "NLH"},
	{"UI", "NPA"},
	{"VC", "NLH"},
	{"VI", "NLH"},
	{"VA", "NLH"},
	{"SC", "NLH"},
	{"SI", "NLH"},
	{"SA", "NLH"},
}

// V3Metrics holds the eight CVSS v3.1 base metrics.
type V3Metrics struct {
	AV string // Attack Vector: N, A, L, P
	AC string // Attack Complexity: L, H
	PR string // Privileges Required: N, L, H
	UI string // User Interaction: N, R
	S  string // Scope: U, C
	C  string // Confidentiality impact: N, L, H
	I  string // Integrity impact: N, L, H
	A  string // Availability impact: N, L, H
}

// V4Metrics holds the eleven CVSS v4.0 base metrics.
type V4Metrics struct {
	AV string // Attack Vector: N, A, L, P
	AC string // Attack Complexity: L, H
	AT string // Attack Requirements: N, P
	PR string // Privileges Required: N, L, H
	UI string // User Interaction: N, P, A
	VC string // Vulnerable system Confidentiality: N, L, H
	VI string // Vulnerable system Integrity: N, L, H
	VA string // Vulnerable system Availability: N, L, H
	SC string // Subsequent system Confidentiality: N, L, H
	SI string // Subsequent system Integrity: N, L, H
	SA string // Subsequent system Availability: N, L, H
}

func (m *V3Metrics) fields() []*string {
	return []*string{&m.AV, &m.AC, &m.PR, &m.UI, &m.S, &m.C, &m.I, &m.A}
}

func (m *V4Metrics) fields() []*string {
	return []*string{&m.AV, &m.AC, &m.AT, &m.PR, &m.UI, &m.VC, &m.VI, &m.VA, &m.SC, &m.SI, &m.SA}
}

// Version reports V3.
func (m V3Metrics) Version() Version { return V3 }

// Version reports V4.
func (m V4Metrics) Version() Version { return V4 }

// Vector renders the canonical CVSS:3.1 vector string.
func (m V3Metrics) Vector() string { return serialize("CVSS:3.1", v3Order, m.fields()) }

// Vector renders the canonical CVSS:4.0 vector string.
func (m V4Metrics) Vector() string { return serialize("CVSS:4.0", v4Order, m.fields()) }

// Metrics returns the metric codes and values as a map.
func (m V3Metrics) Metrics() map[string]string { return metricMap(v3Order, m.fields()) }

// Metrics returns the metric codes and values as a map.
func (m V4Metrics) Metrics() map[string]string { return metricMap(v4Order, m.fields()) }

// Validate checks that every metric carries a legal value.
func (m V3Metrics) Validate() error { return validate(v3Order, m.fields()) }

// Validate checks that every metric carries a legal value.
func (m V4Metrics) Validate() error { return validate(v4Order, m.fields()) }

func serialize(prefix string, order []metricDef, fields []*string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for i, def := range order {
		b.WriteByte('/')
		b.WriteString(def.key)
		b.WriteByte(':')
		b.WriteString(*fields[i])
	}
	return b.String()
}

func metricMap(order []metricDef, fields []*string) map[string]string {
	out := make(map[string]string, len(order))
	for i, def := range order {
		out[def.key] = *fields[i]
	}
	return out
}

func validate(order []metricDef, fields []*string) error {
	for i, def := range order {
		v := *fields[i]
		if v == "" {
			return &MissingMetricError{Key: def.key}
		}
		if len(v) != 1 || !strings.Contains(def.values, v) {
			return &InvalidValueError{Key: def.key, Value: v}
		}
	}
	return nil
}
