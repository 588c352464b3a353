package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/jung-kurt/gofpdf"
	"github.com/paylens/fee-insights/pkg/models/domain"
)

// WritePDF renders the report as a single-column A4 document.
func WritePDF(w io.Writer, report *domain.Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s", report.Title)), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Generated: %s", report.GeneratedAt.Format("2006-01-02 15:04"))), "", 1, "L", true, 0, "")
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Total Amount: %s %.2f", report.Currency, report.TotalAmount)), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	for _, section := range report.Sections {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(section.Title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])

		keys := make([]string, 0, len(section.Summary))
		for key := range section.Summary {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			pdf.MultiCell(190, 5, tr(fmt.Sprintf("%s: %v", key, section.Summary[key])), "", "L", false)
		}

		for _, detail := range section.Details {
			line := fmt.Sprintf("- %s: %v", detail.Name, detail.Value)
			if detail.Unit != "" {
				line += " " + detail.Unit
			}
			if detail.Description != "" {
				line += fmt.Sprintf(" (%s)", detail.Description)
			}
			pdf.MultiCell(190, 5, tr(line), "", "L", false)
		}

		pdf.Ln(8)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("error writing PDF report: %w", err)
	}
	return nil
}
