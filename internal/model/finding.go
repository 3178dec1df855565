package model

// Finding is a single heuristic observation about a password.
type Finding struct {
	// Type is the finding type identifier (see the Finding* constants).
	Type string `json:"type"`

	// Severity is the risk level.
	Severity Severity `json:"severity"`

	// SeverityText is the human-readable severity.
	SeverityText string `json:"severity_text"`

	// Title is a short, localized label for the finding.
	Title string `json:"title"`

	// Description explains why the finding matters, localized.
	Description string `json:"description,omitempty"`
}

// NewFinding creates a Finding whose severity is derived from its type.
func NewFinding(findingType, title, description string) Finding {
	severity := GetSeverity(findingType)
	return Finding{
		Type:         findingType,
		Severity:     severity,
		SeverityText: severity.String(),
		Title:        title,
		Description:  description,
	}
}
