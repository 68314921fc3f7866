package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"permits/internal/ui/browser"
)

// PermissionList renders the browser table into an A4 PDF. The rows carry
// the same labels and dates as the screen, so the export matches it.
func PermissionList(table browser.Table) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Permisos de Empleados")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Generado: %s", time.Now().UTC().Format("2006-01-02 15:04")))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(15, 8, "ID", "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 8, "Nombre", "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 8, "Apellido", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Tipo", "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 8, "Fecha", "1", 0, "L", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	if table.Placeholder != "" {
		pdf.CellFormat(190, 8, table.Placeholder, "1", 0, "C", false, 0, "")
		pdf.Ln(8)
	}
	for _, row := range table.Rows {
		pdf.CellFormat(15, 8, fmt.Sprintf("%d", row.Record.ID), "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 8, row.Record.FirstName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 8, row.Record.LastName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, row.TypeLabel, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 8, row.DateLabel, "1", 0, "L", false, 0, "")
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
