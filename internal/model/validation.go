package model

// ValidationResult reports the outcome of one validation pass. Errors are
// hard physical violations; warnings degrade confidence without
// invalidating. Order of findings is the order checks ran.
type ValidationResult struct {
	IsValid    bool     `json:"is_valid"`
	Confidence float64  `json:"confidence"`
	Errors     []string `json:"errors,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}

// ValidationReport is the human-facing summary assembled over a whole
// extraction: validation findings plus free-text recommendations for
// missing data categories.
type ValidationReport struct {
	IsValid         bool     `json:"is_valid"`
	Confidence      float64  `json:"confidence"`
	Errors          []string `json:"errors,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}
