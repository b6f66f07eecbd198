package cvss

import "strings"

// Parse decodes a CVSS vector string into a fully populated metric set.
// Accepted prefixes are CVSS:3.0 (normalized to v3.1 semantics), CVSS:3.1 and
// CVSS:4.0. Every segment after the prefix must be a KEY:value pair; every
// required base metric must be present with a legal value. Well-formed keys
// outside the base set (temporal or environmental metrics) are ignored.
//
// Errors are one of *InvalidFormatError, *MalformedSegmentError,
// *MissingMetricError or *InvalidValueError.
func Parse(vector string) (MetricSet, error) {
	prefix, rest, ok := strings.Cut(vector, "/")
	if !ok {
		prefix = vector
		rest = ""
	}

	var version Version
	switch prefix {
	case "CVSS:3.0", "CVSS:3.1":
		version = V3
	case "CVSS:4.0":
		version = V4
	default:
		return nil, &InvalidFormatError{Vector: vector}
	}

	extracted, err := splitSegments(rest)
	if err != nil {
		return nil, err
	}

	if version == V3 {
		var m V3Metrics
		if err := populate(v3Order, m.fields(), extracted); err != nil {
			return nil, err
		}
		return m, nil
	}
	var m V4Metrics
	if err := populate(v4Order, m.fields(), extracted); err != nil {
		return nil, err
	}
	return m, nil
}

// splitSegments breaks the part after the prefix into key/value pairs.
// Empty segments (doubled slashes, trailing slash) are tolerated; a segment
// without a colon or with an empty key or value is a hard error.
func splitSegments(rest string) (map[string]string, error) {
	out := map[string]string{}
	if rest == "" {
		return out, nil
	}
	for _, seg := range strings.Split(rest, "/") {
		if seg == "" {
			continue
		}
		key, value, ok := strings.Cut(seg, ":")
		if !ok || key == "" || value == "" {
			return nil, &MalformedSegmentError{Segment: seg}
		}
		out[key] = value
	}
	return out, nil
}

func populate(order []metricDef, fields []*string, extracted map[string]string) error {
	for i, def := range order {
		value, present := extracted[def.key]
		if !present {
			return &MissingMetricError{Key: def.key}
		}
		if len(value) != 1 || !strings.Contains(def.values, value) {
			return &InvalidValueError{Key: def.key, Value: value}
		}
		*fields[i] = value
	}
	return nil
}
