package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/rgehrsitz/rptax/internal/domain"
)

const (
	pdfMarginLeft   = 20.0
	pdfMarginTop    = 20.0
	pdfMarginRight  = 20.0
	pdfMarginBottom = 20.0
	pdfContentWidth = 215.9 - pdfMarginLeft - pdfMarginRight
)

var pdfColumns = []float64{20, 110, pdfContentWidth - 130}

// PDFFormatter renders a printable summary report
type PDFFormatter struct {
	// Now stamps the report; time.Now when nil
	Now func() time.Time
}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(results *domain.TaxReturnResult) ([]byte, error) {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, pdfMarginBottom)
	pdf.SetTitle(fmt.Sprintf("%d Tax Return", results.Federal.TaxYear), false)
	pdf.SetCreationDate(now())
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(60, 47, 128)
	pdf.CellFormat(pdfContentWidth, 12, fmt.Sprintf("%d Tax Return", results.Federal.TaxYear), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "I", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(pdfContentWidth, 6, fmt.Sprintf("Filing status %s. Generated %s",
		results.Federal.FilingStatus, now().Format("2 January 2006")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	drawPDFSection(pdf, "Federal (Form 1040)", FederalLines(results.Federal))
	drawPDFSection(pdf, "California (Form 540)", CaliforniaLines(results.California))

	if warnings := Warnings(results); len(warnings) > 0 {
		drawPDFHeader(pdf, "Review")
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(176, 0, 32)
		for _, w := range warnings {
			pdf.MultiCell(pdfContentWidth, 5, w, "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawPDFHeader(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(60, 47, 128)
	pdf.CellFormat(pdfContentWidth, 9, title, "", 1, "L", false, 0, "")
	pdf.SetDrawColor(60, 47, 128)
	pdf.Line(pdfMarginLeft, pdf.GetY(), pdfMarginLeft+pdfContentWidth, pdf.GetY())
	pdf.Ln(2)
}

func drawPDFSection(pdf *fpdf.Fpdf, title string, lines []ReportLine) {
	drawPDFHeader(pdf, title)

	pdf.SetFillColor(60, 47, 128)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 9)
	for i, header := range []string{"Line", "Description", "Amount"} {
		align := "L"
		if i == 2 {
			align = "R"
		}
		pdf.CellFormat(pdfColumns[i], 6, header, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(50, 50, 50)
	for _, line := range lines {
		style := ""
		pdf.SetFillColor(250, 250, 250)
		if line.Total {
			style = "B"
			pdf.SetFillColor(235, 235, 245)
		}
		pdf.SetFont("Arial", style, 9)
		pdf.CellFormat(pdfColumns[0], 6, line.Ref, "1", 0, "L", true, 0, "")
		pdf.CellFormat(pdfColumns[1], 6, line.Label, "1", 0, "L", true, 0, "")
		pdf.CellFormat(pdfColumns[2], 6, FormatCurrency(line.Amount), "1", 0, "R", true, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}
