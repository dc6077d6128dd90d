// Package export writes completed bids to interchange formats for
// estimators: an XLSX workbook and plain JSON.
package export

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/pace-estimating/pace-cli/internal/model"
)

const moneyFormat = "#,##0.00"

// WriteWorkbook writes the bid and its quality assessment to a four-sheet
// XLSX workbook at path.
func WriteWorkbook(path string, b *model.Bid, metrics model.QualityMetrics) error {
	f := xlsx.NewFile()

	if err := addLineItemsSheet(f, b); err != nil {
		return err
	}
	if err := addPricingSheet(f, b); err != nil {
		return err
	}
	if err := addAnalysisSheet(f, b); err != nil {
		return err
	}
	if err := addQualitySheet(f, metrics); err != nil {
		return err
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "export: save workbook %s", path)
	}

	zap.L().Info("export: workbook written",
		zap.String("path", path),
		zap.String("run_id", b.RunID),
	)
	return nil
}

func addLineItemsSheet(f *xlsx.File, b *model.Bid) error {
	sheet, err := f.AddSheet("Line Items")
	if err != nil {
		return eris.Wrap(err, "export: add line items sheet")
	}

	header(sheet, "Item", "Description", "Term", "Quantity", "Unit",
		"Unit Price", "Total Price", "Waste Factor", "Match Quality", "Notes")

	for _, item := range b.LineItems {
		row := sheet.AddRow()
		row.AddCell().Value = item.ItemNumber
		row.AddCell().Value = item.Description
		row.AddCell().Value = item.SourceTerm
		row.AddCell().SetFloat(item.Quantity)
		row.AddCell().Value = item.Unit
		row.AddCell().SetFloatWithFormat(item.UnitPrice, moneyFormat)
		row.AddCell().SetFloatWithFormat(item.TotalPrice, moneyFormat)
		row.AddCell().SetFloat(item.WasteFactor)
		row.AddCell().Value = string(item.BestMatchQuality())
		row.AddCell().Value = item.Notes
	}
	return nil
}

func addPricingSheet(f *xlsx.File, b *model.Bid) error {
	sheet, err := f.AddSheet("Pricing Summary")
	if err != nil {
		return eris.Wrap(err, "export: add pricing sheet")
	}

	s := b.PricingSummary
	moneyRow(sheet, "Subtotal", s.Subtotal)
	moneyRow(sheet, fmt.Sprintf("Markup (%.0f%%)", b.MarkupPercentage*100), s.MarkupAmount)
	moneyRow(sheet, "Waste Adjustments", s.WasteAdjustments)
	moneyRow(sheet, "Delivery Fee", s.DeliveryFee)
	moneyRow(sheet, "Total", s.Total)

	sheet.AddRow()
	labelRow(sheet, "Line Items", fmt.Sprintf("%d", s.LineItemCount))
	labelRow(sheet, "High Priority Items", fmt.Sprintf("%d", s.HighPriorityItems))
	moneyRow(sheet, "Est. Materials Cost", s.EstimatedMaterialsCost)
	moneyRow(sheet, "Est. Labor Cost", s.EstimatedLaborCost)
	return nil
}

func addAnalysisSheet(f *xlsx.File, b *model.Bid) error {
	sheet, err := f.AddSheet("Cross References")
	if err != nil {
		return eris.Wrap(err, "export: add analysis sheet")
	}

	header(sheet, "Term", "Category", "Document", "Page", "Confidence", "Context")
	for _, tm := range b.Analysis.Terms {
		row := sheet.AddRow()
		row.AddCell().Value = tm.Term
		row.AddCell().Value = tm.Category
		row.AddCell().Value = string(tm.SourceDocument)
		row.AddCell().SetInt(tm.PageNumber)
		row.AddCell().SetFloat(tm.Confidence)
		row.AddCell().Value = tm.Context
	}

	sheet.AddRow()
	labelRow(sheet, "Consistency Score", fmt.Sprintf("%.2f", b.Analysis.ConsistencyScore))

	if len(b.Analysis.Alerts) > 0 {
		sheet.AddRow()
		header(sheet, "Alert Level", "Category", "Message", "Recommendation")
		for _, a := range b.Analysis.Alerts {
			row := sheet.AddRow()
			row.AddCell().Value = string(a.Level)
			row.AddCell().Value = a.Category
			row.AddCell().Value = a.Message
			row.AddCell().Value = a.Recommendation
		}
	}
	return nil
}

func addQualitySheet(f *xlsx.File, metrics model.QualityMetrics) error {
	sheet, err := f.AddSheet("Quality")
	if err != nil {
		return eris.Wrap(err, "export: add quality sheet")
	}

	labelRow(sheet, "Grade", metrics.Grade)
	labelRow(sheet, "Overall Score", fmt.Sprintf("%.1f", metrics.OverallScore))
	labelRow(sheet, "Accuracy", fmt.Sprintf("%.1f", metrics.AccuracyScore))
	labelRow(sheet, "Completeness", fmt.Sprintf("%.1f", metrics.CompletenessScore))
	labelRow(sheet, "Consistency", fmt.Sprintf("%.1f", metrics.ConsistencyScore))
	labelRow(sheet, "Confidence", fmt.Sprintf("%.1f", metrics.ConfidenceScore))

	if len(metrics.Alerts) > 0 {
		sheet.AddRow()
		header(sheet, "Level", "Category", "Message", "Recommendation")
		for _, a := range metrics.Alerts {
			row := sheet.AddRow()
			row.AddCell().Value = string(a.Level)
			row.AddCell().Value = a.Category
			row.AddCell().Value = a.Message
			row.AddCell().Value = a.Recommendation
		}
	}
	return nil
}

func header(sheet *xlsx.Sheet, labels ...string) {
	row := sheet.AddRow()
	for _, l := range labels {
		row.AddCell().Value = l
	}
}

func labelRow(sheet *xlsx.Sheet, label, value string) {
	row := sheet.AddRow()
	row.AddCell().Value = label
	row.AddCell().Value = value
}

func moneyRow(sheet *xlsx.Sheet, label string, value float64) {
	row := sheet.AddRow()
	row.AddCell().Value = label
	row.AddCell().SetFloatWithFormat(value, moneyFormat)
}
