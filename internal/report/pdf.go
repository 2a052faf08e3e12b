package report

import (
	"fmt"
	"io"
	"time"

	gofpdf "github.com/go-pdf/fpdf"
)

// pdfEpoch is stamped as creation date so identical reports produce
// identical files.
var pdfEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

const (
	pdfNameWidth = 60
	pdfLineH     = 5
)

func renderPDF(w io.Writer, r *Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(pdfEpoch)
	pdf.SetModificationDate(pdfEpoch)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(textTitle, true)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(30, 41, 59)
	pdf.CellFormat(0, 10, textTitle, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	if src := r.Source; src.Path != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(80, 80, 80)
		pdf.CellFormat(0, 6, tr("File: "+src.Path), "", 1, "L", false, 0, "")
		if src.Architecture != "" {
			pdf.CellFormat(0, 6, tr("Architecture: "+src.Architecture), "", 1, "L", false, 0, "")
		}
		if src.Subsystem != "" {
			pdf.CellFormat(0, 6, tr("Subsystem: "+src.Subsystem), "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	for _, dll := range r.DLLs {
		pdfDLL(pdf, tr, dll)
	}

	if r.MarkDangerous {
		pdfSectionTitle(pdf, tr, "Most Dangerous/Suspicious Functions")
		if len(r.Dangerous) == 0 {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(0, 6, "(none imported)", "", 1, "L", false, 0, "")
		}
		for _, fn := range r.Dangerous {
			pdfFunctionRow(pdf, tr, fn)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("生成PDF报告失败: %w", err)
	}
	return nil
}

func pdfSectionTitle(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(30, 41, 59)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
}

func pdfDLL(pdf *gofpdf.Fpdf, tr func(string) string, dll DLL) {
	pdfSectionTitle(pdf, tr, dll.Name)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(80, 80, 80)
	pdf.MultiCell(0, pdfLineH, tr("DLL Explanation: "+dll.Summary), "", "L", false)
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(242, 242, 242)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(pdfNameWidth, 7, "API Function", "1", 0, "L", true, 0, "")
	pdf.CellFormat(0, 7, "Explanation", "1", 1, "L", true, 0, "")

	for _, fn := range dll.Functions {
		pdfFunctionRow(pdf, tr, fn)
	}
	if dll.Omitted > 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 6, fmt.Sprintf("... %d more functions", dll.Omitted), "", 1, "L", false, 0, "")
	}
}

func pdfFunctionRow(pdf *gofpdf.Fpdf, tr func(string) string, fn Function) {
	name := fn.Name
	switch {
	case fn.Dangerous:
		name += " " + DangerMarker
		pdf.SetTextColor(220, 38, 38)
		pdf.SetFont("Helvetica", "B", 9)
	case fn.Placeholder:
		pdf.SetTextColor(160, 160, 160)
		pdf.SetFont("Helvetica", "", 9)
	default:
		pdf.SetTextColor(60, 60, 60)
		pdf.SetFont("Helvetica", "", 9)
	}

	pdf.CellFormat(pdfNameWidth, 6, tr(truncate(name, 34)), "1", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, tr(truncate(fn.Description, 85)), "1", 1, "L", false, 0, "")
}

// truncate shortens s to n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
