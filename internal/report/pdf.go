package report

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/hyperifyio/gosift/internal/record"
)

// WritePDF renders a minimal PDF of the analysis record: metadata, the
// ranked section list, and the refined summaries. Layout is intentionally
// simple; the JSON record stays the machine-readable artifact.
func WritePDF(out *record.Output, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	heading := func(text string, size float64) {
		pdf.SetFont("Helvetica", "B", size)
		pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
	}

	heading("Document relevance report", 14)
	pdf.MultiCell(0, 5, fmt.Sprintf("Persona: %s", out.Metadata.Persona), "", "L", false)
	pdf.MultiCell(0, 5, fmt.Sprintf("Task: %s", out.Metadata.JobToBeDone), "", "L", false)
	pdf.MultiCell(0, 5, fmt.Sprintf("Generated: %s", out.Metadata.ProcessingTimestamp), "", "L", false)
	pdf.Ln(4)

	heading("Most relevant sections", 12)
	for _, s := range out.ExtractedSections {
		line := fmt.Sprintf("%d. %s (%s, page %d)", s.ImportanceRank, s.SectionTitle, s.Document, s.PageNumber)
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
	pdf.Ln(4)

	heading("Actionable summaries", 12)
	for _, s := range out.SubsectionAnalysis {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 5, fmt.Sprintf("%s, page %d", s.Document, s.PageNumber), "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5, s.RefinedText, "", "L", false)
		pdf.Ln(2)
	}

	return pdf.OutputFileAndClose(path)
}
