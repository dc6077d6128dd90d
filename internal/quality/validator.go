// Package quality validates an assembled bid and its underlying analysis
// against industry ratio, pricing, and completeness checks.
package quality

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pace-estimating/pace-cli/internal/config"
	"github.com/pace-estimating/pace-cli/internal/model"
)

// Validator runs the four independent check families and aggregates their
// alerts into scored quality metrics.
type Validator struct {
	cfg config.QualityConfig
}

// New creates a Validator with the given deduction configuration.
func New(cfg config.QualityConfig) *Validator {
	return &Validator{cfg: cfg}
}

// Validate runs all checks over the bid and cross-reference result. Checks
// are independent; one failing family never suppresses the others.
func (v *Validator) Validate(b *model.Bid, xref *model.CrossReferenceResult) model.QualityMetrics {
	var alerts []model.Alert
	alerts = append(alerts, v.checkRatios(xref.Quantities)...)
	alerts = append(alerts, v.checkCrossReferences(xref)...)
	alerts = append(alerts, v.checkPricing(b.LineItems)...)
	alerts = append(alerts, v.checkCompleteness(xref)...)

	metrics := v.score(alerts, xref.Quantities)
	metrics.Alerts = alerts
	metrics.Grade = model.GradeFor(metrics.OverallScore)
	metrics.ValidationSummary = summarize(alerts, metrics)

	zap.L().Info("quality: validation complete",
		zap.Float64("overall_score", metrics.OverallScore),
		zap.String("grade", string(metrics.Grade)),
		zap.Int("alerts", len(alerts)),
	)
	return metrics
}

// checkRatios compares derived quantity ratios against industry bands.
func (v *Validator) checkRatios(quantities []model.ExtractedQuantity) []model.Alert {
	var alerts []model.Alert

	floorArea := totalByUnit(quantities, "SQFT") + totalByUnit(quantities, "SF")

	if floorArea > 0 {
		if doors := countByContext(quantities, "EA", "door"); doors > 0 {
			band := industryRatios["sf_per_door"]
			ratio := floorArea / doors
			if ratio < band.min || ratio > band.max {
				alerts = append(alerts, ratioAlert(
					fmt.Sprintf("Unusual door ratio: %.0f SF per door", ratio),
					fmt.Sprintf("Typical range: %.0f-%.0f SF per door", band.min, band.max), 0.8))
			}
		}
		if windows := countByContext(quantities, "EA", "window"); windows > 0 {
			band := industryRatios["sf_per_window"]
			ratio := floorArea / windows
			if ratio < band.min || ratio > band.max {
				alerts = append(alerts, ratioAlert(
					fmt.Sprintf("Unusual window ratio: %.0f SF per window", ratio),
					fmt.Sprintf("Typical range: %.0f-%.0f SF per window", band.min, band.max), 0.8))
			}
		}
	}

	concreteCY := totalByContext(quantities, "CY", "concrete")
	rebarLB := totalByContext(quantities, "LB", "rebar") + totalByContext(quantities, "LB", "reinforc")
	if concreteCY > 0 && rebarLB > 0 {
		band := industryRatios["lbs_rebar_per_cy"]
		ratio := rebarLB / concreteCY
		if ratio < band.min || ratio > band.max {
			alerts = append(alerts, ratioAlert(
				fmt.Sprintf("Unusual rebar ratio: %.0f lbs per CY concrete", ratio),
				fmt.Sprintf("Typical range: %.0f-%.0f lbs per CY", band.min, band.max), 0.9))
		}
	}

	return alerts
}

// checkCrossReferences flags term-category presence without supporting
// quantities and vice versa.
func (v *Validator) checkCrossReferences(xref *model.CrossReferenceResult) []model.Alert {
	var alerts []model.Alert

	if len(xref.DocumentTypes) < 2 {
		alerts = append(alerts, model.Alert{
			Level:          model.AlertInfo,
			Category:       model.AlertCategoryCrossRef,
			Message:        "Limited cross-reference validation - single document type",
			Recommendation: "Provide specifications, bid forms, and plans together for full validation",
			Confidence:     0.7,
		})
	}

	hasConcreteTerms := false
	for _, tm := range xref.Terms {
		if strings.Contains(strings.ToUpper(tm.Term), "CONCRETE") {
			hasConcreteTerms = true
			break
		}
	}
	hasConcreteQuantities := totalByUnit(xref.Quantities, "CY") > 0

	if hasConcreteTerms && !hasConcreteQuantities {
		alerts = append(alerts, model.Alert{
			Level:          model.AlertWarning,
			Category:       model.AlertCategoryCrossRef,
			Message:        "Concrete work indicated in specifications but no volume quantities found",
			Recommendation: "Verify concrete quantities in the plan sheets",
			Confidence:     0.8,
		})
	}
	if !hasConcreteTerms && hasConcreteQuantities {
		alerts = append(alerts, model.Alert{
			Level:          model.AlertInfo,
			Category:       model.AlertCategoryCrossRef,
			Message:        "Concrete quantities found but no concrete terminology detected",
			Recommendation: "Verify specification requirements for concrete work",
			Confidence:     0.7,
		})
	}

	return alerts
}

// checkPricing flags line-item unit prices outside per-material cost bands.
func (v *Validator) checkPricing(items []model.BidLineItem) []model.Alert {
	var alerts []model.Alert

	for _, item := range items {
		band, ok := costBandFor(item.SourceTerm, item.Unit)
		if !ok || item.UnitPrice == 0 {
			continue
		}

		switch {
		case item.UnitPrice < band.min:
			alerts = append(alerts, pricingAlert(
				fmt.Sprintf("%s unit price $%.2f seems low", item.SourceTerm, item.UnitPrice), band))
		case item.UnitPrice > band.max:
			alerts = append(alerts, pricingAlert(
				fmt.Sprintf("%s unit price $%.2f seems high", item.SourceTerm, item.UnitPrice), band))
		}
	}
	return alerts
}

// checkCompleteness requires a minimum finding count to call the analysis
// usable.
func (v *Validator) checkCompleteness(xref *model.CrossReferenceResult) []model.Alert {
	var alerts []model.Alert

	termCount := len(xref.Terms)
	switch {
	case termCount == 0:
		alerts = append(alerts, model.Alert{
			Level:          model.AlertError,
			Category:       model.AlertCategoryCompleteness,
			Message:        "No terminology detected",
			Recommendation: "Verify the documents are agency specifications",
			Confidence:     0.9,
		})
	case termCount < v.cfg.MinTermCount:
		alerts = append(alerts, model.Alert{
			Level:          model.AlertWarning,
			Category:       model.AlertCategoryCompleteness,
			Message:        fmt.Sprintf("Only %d terms found", termCount),
			Recommendation: "Consider reviewing additional specification sections",
			Confidence:     0.7,
		})
	}

	quantityCount := len(xref.Quantities)
	switch {
	case quantityCount == 0:
		alerts = append(alerts, model.Alert{
			Level:          model.AlertError,
			Category:       model.AlertCategoryCompleteness,
			Message:        "No quantities extracted",
			Recommendation: "Verify document text quality and unit call-outs",
			Confidence:     0.9,
		})
	case quantityCount < v.cfg.MinQuantityCount:
		alerts = append(alerts, model.Alert{
			Level:          model.AlertWarning,
			Category:       model.AlertCategoryCompleteness,
			Message:        fmt.Sprintf("Only %d quantities extracted", quantityCount),
			Recommendation: "Consider analyzing additional plan sheets",
			Confidence:     0.7,
		})
	}

	return alerts
}

// score starts each sub-score at 100 and applies per-level deductions by
// alert category. Pricing alerts deduct from accuracy at a reduced scale.
// The confidence sub-score comes from quantity confidences, not alerts.
func (v *Validator) score(alerts []model.Alert, quantities []model.ExtractedQuantity) model.QualityMetrics {
	accuracy, completeness, consistency := 100.0, 100.0, 100.0

	for _, a := range alerts {
		var deduction float64
		switch a.Level {
		case model.AlertError, model.AlertCritical:
			deduction = v.cfg.ErrorDeduction
		case model.AlertWarning:
			deduction = v.cfg.WarningDeduction
		case model.AlertInfo:
			deduction = v.cfg.InfoDeduction
		}

		switch a.Category {
		case model.AlertCategoryRatio:
			accuracy -= deduction
		case model.AlertCategoryCompleteness:
			completeness -= deduction
		case model.AlertCategoryCrossRef:
			consistency -= deduction
		case model.AlertCategoryPricing:
			accuracy -= deduction * v.cfg.PricingScale
		}
	}

	confidence := 100.0
	if len(quantities) > 0 {
		var sum float64
		for _, q := range quantities {
			sum += q.Confidence
		}
		confidence = sum / float64(len(quantities)) * 100
	}

	accuracy = floor0(accuracy)
	completeness = floor0(completeness)
	consistency = floor0(consistency)
	confidence = floor0(confidence)

	return model.QualityMetrics{
		OverallScore:      (accuracy + completeness + consistency + confidence) / 4,
		AccuracyScore:     accuracy,
		CompletenessScore: completeness,
		ConsistencyScore:  consistency,
		ConfidenceScore:   confidence,
	}
}

func summarize(alerts []model.Alert, metrics model.QualityMetrics) string {
	var critical, errors, warnings int
	for _, a := range alerts {
		switch a.Level {
		case model.AlertCritical:
			critical++
		case model.AlertError:
			errors++
		case model.AlertWarning:
			warnings++
		}
	}

	summary := fmt.Sprintf("Quality Assessment: %s (%.1f%%)\n", metrics.Grade, metrics.OverallScore)
	summary += fmt.Sprintf("Issues Found: %d Critical, %d Errors, %d Warnings\n", critical, errors, warnings)

	switch {
	case metrics.OverallScore >= 85:
		summary += "Analysis quality is sufficient for bidding. Minor issues may need attention."
	case metrics.OverallScore >= 70:
		summary += "Analysis quality is acceptable but requires review of flagged issues."
	default:
		summary += "Analysis quality requires significant improvement before use in bidding."
	}
	return summary
}

func ratioAlert(message, recommendation string, confidence float64) model.Alert {
	return model.Alert{
		Level:          model.AlertWarning,
		Category:       model.AlertCategoryRatio,
		Message:        message,
		Recommendation: recommendation,
		Confidence:     confidence,
	}
}

func pricingAlert(message string, band costBand) model.Alert {
	return model.Alert{
		Level:          model.AlertWarning,
		Category:       model.AlertCategoryPricing,
		Message:        message,
		Recommendation: fmt.Sprintf("Typical range: $%.2f-$%.2f", band.min, band.max),
		Confidence:     0.8,
	}
}

func totalByUnit(quantities []model.ExtractedQuantity, unit string) float64 {
	var total float64
	for _, q := range quantities {
		if q.Unit == unit {
			total += q.Value
		}
	}
	return total
}

func totalByContext(quantities []model.ExtractedQuantity, unit, keyword string) float64 {
	var total float64
	for _, q := range quantities {
		if q.Unit == unit && strings.Contains(strings.ToLower(q.Context), keyword) {
			total += q.Value
		}
	}
	return total
}

func countByContext(quantities []model.ExtractedQuantity, unit, keyword string) float64 {
	var count float64
	for _, q := range quantities {
		if q.Unit == unit && strings.Contains(strings.ToLower(q.Context), keyword) {
			count += q.Value
		}
	}
	return count
}

func floor0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
