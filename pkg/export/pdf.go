package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const pageWidth = 190.0

// PDF renders sheets as a single A4 table.
type PDF struct{}

// ContentType implements Renderer.
func (PDF) ContentType() string { return "application/pdf" }

// Extension implements Renderer.
func (PDF) Extension() string { return FormatPDF }

// Render implements Renderer.
func (PDF) Render(sheet Sheet) ([]byte, error) {
	if err := sheet.validate(); err != nil {
		return nil, err
	}
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(10, 15, 10)
	doc.SetTitle(sheet.Title, true)
	doc.AddPage()

	if sheet.Title != "" {
		doc.SetFont("Arial", "B", 14)
		doc.CellFormat(0, 10, sheet.Title, "", 1, "C", false, 0, "")
		doc.Ln(4)
	}

	width := pageWidth / float64(len(sheet.Headers))
	doc.SetFont("Arial", "B", 10)
	doc.SetFillColor(230, 230, 230)
	for _, header := range sheet.Headers {
		doc.CellFormat(width, 8, header, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Arial", "", 9)
	for _, row := range sheet.Rows {
		for _, cell := range row {
			doc.CellFormat(width, 7, cell, "1", 0, "", false, 0, "")
		}
		doc.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := doc.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
