package cvss

import "fmt"

// InvalidFormatError reports a vector string without a recognized
// CVSS:3.0, CVSS:3.1 or CVSS:4.0 prefix.
type InvalidFormatError struct {
	Vector string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid CVSS vector %q: must start with CVSS:3.0, CVSS:3.1 or CVSS:4.0", e.Vector)
}

// MalformedSegmentError reports a vector segment that is not a KEY:value pair.
type MalformedSegmentError struct {
	Segment string
}

func (e *MalformedSegmentError) Error() string {
	return fmt.Sprintf("malformed vector segment %q: expected KEY:value", e.Segment)
}

// MissingMetricError reports a required base metric absent from the vector.
type MissingMetricError struct {
	Key string
}

func (e *MissingMetricError) Error() string {
	return fmt.Sprintf("missing required metric %s", e.Key)
}

// InvalidValueError reports a metric whose value is outside its legal set.
type InvalidValueError struct {
	Key   string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for metric %s", e.Value, e.Key)
}
