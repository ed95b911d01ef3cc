package export

import (
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/hnpage/ghino"
)

// column widths in mm, tuned for an A4 portrait page.
var pdfWidths = []float64{35, 28, 28, 18, 24, 57}

var pdfColumns = []string{"Name", "Phone", "Amount", "Type", "Date", "Note"}

// PDF writes the snapshot's transactions as a paginated A4 document,
// repeating the column header on every page.
func PDF(w io.Writer, snap ghino.Snapshot) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Transaction history", false)
	doc.SetHeaderFunc(func() {
		doc.SetFont("Helvetica", "B", 14)
		doc.Cell(0, 10, "Transaction history")
		doc.Ln(12)
		doc.SetFont("Helvetica", "B", 10)
		for i, col := range pdfColumns {
			doc.CellFormat(pdfWidths[i], 8, col, "1", 0, "L", false, 0, "")
		}
		doc.Ln(-1)
	})
	doc.AddPage()

	doc.SetFont("Helvetica", "", 10)
	for _, tx := range snap.Sorted().Transactions {
		cells := []string{
			tx.ContactName,
			tx.PhoneNumber,
			tx.Amount.String(),
			string(tx.Type),
			tx.When().Format(dateFormat),
			tx.Note,
		}
		for i, cell := range cells {
			doc.CellFormat(pdfWidths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		doc.Ln(-1)
	}
	return doc.Output(w)
}
