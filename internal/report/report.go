// Package report renders advice text as a PDF file.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
)

const (
	reportTitle = "Financial Analysis Report"
	fontFamily  = "Arial"
	fontSize    = 12
	lineHeight  = 10
)

// Render writes the advice text to a PDF at path: a centered title
// followed by the advice as a flowing paragraph. Accented Spanish text is
// translated to the core-font cp1252 encoding.
func Render(advice, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report dir %s: %w", dir, err)
		}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont(fontFamily, "", fontSize)

	pdf.CellFormat(0, lineHeight, tr(reportTitle), "", 1, "C", false, 0, "")
	pdf.MultiCell(0, lineHeight, tr(advice), "", "L", false)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
