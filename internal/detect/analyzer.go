package detect

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pace-estimating/pace-cli/internal/config"
	"github.com/pace-estimating/pace-cli/internal/extract"
	"github.com/pace-estimating/pace-cli/internal/model"
	"github.com/pace-estimating/pace-cli/internal/terms"
)

// largeQuantityThresholds triggers a WARNING alert when a single extracted
// quantity exceeds the per-unit bound.
var largeQuantityThresholds = map[string]float64{
	"SQFT": 10000,
	"LF":   5000,
	"CY":   1000,
	"EA":   500,
	"TON":  100,
	"GAL":  10000,
	"LB":   50000,
}

const defaultQuantityThreshold = 1000

// Analyzer runs quantity extraction and term detection over one document.
// Analyzers share no mutable state; documents can be analyzed concurrently.
type Analyzer struct {
	extractor *extract.Extractor
	detector  *Detector
}

// NewAnalyzer wires an Analyzer from the term catalog and detection config.
func NewAnalyzer(catalog *terms.Catalog, cfg config.DetectConfig) *Analyzer {
	return &Analyzer{
		extractor: extract.New(),
		detector:  New(catalog, cfg),
	}
}

// Analyze scans every page of the document and returns the aggregated,
// read-only analysis result. Pages that yield nothing are fine; the result
// is best-effort by design.
func (a *Analyzer) Analyze(doc model.DocumentText) *model.DocumentAnalysisResult {
	result := &model.DocumentAnalysisResult{
		DocumentName: doc.Name,
		DocumentType: doc.Type,
		PageCount:    doc.PageCount(),
	}

	var qualitySum float64
	for i, page := range doc.Pages {
		pageNum := i + 1

		quantities := a.extractor.ExtractPage(page, pageNum, doc.Type)
		termMatches := a.detector.DetectPage(page, pageNum, doc.Type, quantities)

		result.Quantities = append(result.Quantities, quantities...)
		result.Terms = append(result.Terms, termMatches...)
		result.Alerts = append(result.Alerts, pageAlerts(termMatches, quantities)...)
		qualitySum += TextQuality(page)
	}

	if doc.PageCount() > 0 {
		result.TextQuality = qualitySum / float64(doc.PageCount())
	}

	zap.L().Info("detect: document analyzed",
		zap.String("document", doc.Name),
		zap.String("type", string(doc.Type)),
		zap.Int("pages", doc.PageCount()),
		zap.Int("terms", len(result.Terms)),
		zap.Int("quantities", len(result.Quantities)),
		zap.Float64("text_quality", result.TextQuality),
	)

	return result
}

// pageAlerts flags high-priority terms and unusually large quantities.
func pageAlerts(termMatches []model.TermMatch, quantities []model.ExtractedQuantity) []model.Alert {
	var alerts []model.Alert

	for _, m := range termMatches {
		if m.Priority == model.PriorityHigh {
			alerts = append(alerts, model.Alert{
				Level:      model.AlertInfo,
				Category:   model.AlertCategoryTerm,
				Message:    fmt.Sprintf("High-priority term detected: %s", m.Term),
				Term:       m.Term,
				PageNumber: m.PageNumber,
				Confidence: m.Confidence,
			})
		}
	}

	for _, q := range quantities {
		threshold, ok := largeQuantityThresholds[q.Unit]
		if !ok {
			threshold = defaultQuantityThreshold
		}
		if q.Value > threshold {
			alerts = append(alerts, model.Alert{
				Level:          model.AlertWarning,
				Category:       model.AlertCategoryQuantity,
				Message:        fmt.Sprintf("Large quantity detected: %.0f %s", q.Value, q.Unit),
				Recommendation: fmt.Sprintf("Verify against plan sheets; alert threshold is %.0f %s", threshold, q.Unit),
				PageNumber:     q.PageNumber,
				Confidence:     q.Confidence,
			})
		}
	}

	return alerts
}
