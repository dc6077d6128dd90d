package model

// AlertLevel grades the severity of an analysis or validation alert.
type AlertLevel string

const (
	AlertInfo     AlertLevel = "INFO"
	AlertWarning  AlertLevel = "WARNING"
	AlertError    AlertLevel = "ERROR"
	AlertCritical AlertLevel = "CRITICAL"
)

// Alert categories used by the quality validator's deduction table.
const (
	AlertCategoryRatio        = "RATIO_CHECK"
	AlertCategoryCrossRef     = "CROSS_REFERENCE"
	AlertCategoryPricing      = "PRICING"
	AlertCategoryCompleteness = "COMPLETENESS"
	AlertCategoryQuantity     = "QUANTITY"
	AlertCategoryTerm         = "TERMINOLOGY"
)

// Alert is a leveled finding about a bid or its source analysis.
type Alert struct {
	Level          AlertLevel `json:"level"`
	Category       string     `json:"category"`
	Message        string     `json:"message"`
	Recommendation string     `json:"recommendation,omitempty"`
	Term           string     `json:"term,omitempty"`
	PageNumber     int        `json:"page_number,omitempty"`
	Confidence     float64    `json:"confidence,omitempty"`
}
