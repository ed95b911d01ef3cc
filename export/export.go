// Package export writes the recorded history to portable documents,
// either a two-sheet xlsx workbook or a paginated PDF.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/hnpage/ghino"
)

const (
	transactionSheet = "TransactionHistory"
	paymentSheet     = "PaymentHistory"

	dateFormat = "02/01/2006"
)

var transactionColumns = []any{"Name", "Phone", "Amount", "Type", "Date", "Note", "Transaction ID"}
var paymentColumns = []any{"Name", "Phone", "Amount", "Date", "Note", "Transaction ID", "Payment ID"}

// Workbook writes the snapshot as an xlsx workbook with one sheet for
// transactions and one for their payments. Payments whose transaction is
// not part of the snapshot are skipped.
func Workbook(w io.Writer, snap ghino.Snapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(transactionSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(paymentSheet); err != nil {
		return err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	if err := f.SetSheetRow(transactionSheet, "A1", &transactionColumns); err != nil {
		return err
	}
	sorted := snap.Sorted()
	for i, tx := range sorted.Transactions {
		row := []any{
			tx.ContactName,
			tx.PhoneNumber,
			tx.Amount.String(),
			string(tx.Type),
			tx.When().Format(dateFormat),
			tx.Note,
			tx.ID,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(transactionSheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetSheetRow(paymentSheet, "A1", &paymentColumns); err != nil {
		return err
	}
	line := 2
	for _, tx := range sorted.Transactions {
		for _, p := range sorted.PaymentsFor(tx.ID) {
			row := []any{
				tx.ContactName,
				tx.PhoneNumber,
				p.Amount.String(),
				p.When().Format(dateFormat),
				p.Note,
				p.TransactionID,
				p.ID,
			}
			cell, err := excelize.CoordinatesToCellName(1, line)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(paymentSheet, cell, &row); err != nil {
				return err
			}
			line++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}
