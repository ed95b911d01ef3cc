package renderer

import (
	"fmt"

	"github.com/hnpage/ghino"
)

// Entry renders a transaction to a one-line string.
func Entry(tx ghino.Transaction, currency string) string {
	amount := ghino.M(tx.Amount, currency)
	switch tx.Type {
	case ghino.Debit:
		return fmt.Sprintf("Lent %s to %s", amount, tx.ContactName)
	case ghino.Credit:
		return fmt.Sprintf("Borrowed %s from %s", amount, tx.ContactName)
	default:
		return fmt.Sprintf("%s with %s", amount, tx.ContactName)
	}
}

// Settlement renders a payment to a one-line string.
func Settlement(p ghino.Payment, currency string) string {
	if p.Note != "" {
		return fmt.Sprintf("Paid %s on %s (%s)", ghino.M(p.Amount, currency), p.Day(), p.Note)
	}
	return fmt.Sprintf("Paid %s on %s", ghino.M(p.Amount, currency), p.Day())
}
