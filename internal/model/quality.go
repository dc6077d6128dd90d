package model

// QualityMetrics is the post-hoc quality assessment of a completed bid.
type QualityMetrics struct {
	OverallScore      float64 `json:"overall_score"`
	AccuracyScore     float64 `json:"accuracy_score"`
	CompletenessScore float64 `json:"completeness_score"`
	ConsistencyScore  float64 `json:"consistency_score"`
	ConfidenceScore   float64 `json:"confidence_score"`
	Alerts            []Alert `json:"alerts,omitempty"`
	Grade             string  `json:"grade"`
	ValidationSummary string  `json:"validation_summary"`
}

// GradeFor maps an overall score to its textual grade.
func GradeFor(score float64) string {
	switch {
	case score >= 95:
		return "Excellent"
	case score >= 85:
		return "Good"
	case score >= 75:
		return "Fair"
	case score >= 60:
		return "Poor"
	default:
		return "Inadequate"
	}
}
