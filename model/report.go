// Package model - report types shared by the CLI and the OSV enrichment
package model

// VectorReport is the scoring result for a single vector string
type VectorReport struct {
	Vector         string            `json:"vector"`
	Version        string            `json:"version"`
	BaseScore      float64           `json:"base_score"`
	SeverityRating string            `json:"severity_rating"`
	Metrics        map[string]string `json:"metrics,omitempty"`
}

// ConversionReport is the result of converting a vector across CVSS versions
type ConversionReport struct {
	SourceVector      string   `json:"source_vector"`
	SourceScore       float64  `json:"source_score"`
	ConvertedVector   string   `json:"converted_vector"`
	ConvertedScore    float64  `json:"converted_score"`
	ConvertedSeverity string   `json:"converted_severity"`
	Notes             []string `json:"notes"`
}

// AdvisoryScores summarizes the CVSS scores extracted from one OSV advisory
type AdvisoryScores struct {
	ID             string    `json:"id,omitempty"`
	BaseScores     []float64 `json:"cvss_base_scores"`
	BaseScore      float64   `json:"cvss_base_score"`
	SeverityRating string    `json:"severity_rating"`
}
