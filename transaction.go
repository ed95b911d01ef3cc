package ghino

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TxType is a typed string distinguishing the two directions of a debt.
type TxType string

const (
	// Debit records money owed to the user by a contact.
	Debit TxType = "debit"
	// Credit records money the user owes to a contact.
	Credit TxType = "credit"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debit":
		return Debit, nil
	case "credit":
		return Credit, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction is a single debt entry between the user and a contact.
//
// The contact is not a stored entity: it is derived from the pair
// (PhoneNumber, ContactName), where the phone number is the stable identity
// key and the display name drifts to the name on the most recent transaction.
type Transaction struct {
	ID          string          `gorm:"primaryKey" json:"id"`
	ContactName string          `json:"contactName"`
	PhoneNumber string          `gorm:"index" json:"phoneNumber"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,2)" json:"amount"`
	Type        TxType          `json:"type"`
	Date        int64           `json:"date"` // milliseconds since epoch
	Note        string          `json:"note"`
	ReminderSet bool            `json:"isReminderSet"`

	// Payments owned by this transaction; deleting the transaction cascades.
	Payments []Payment `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"-"`
}

// NewTransaction creates a transaction dated now with a fresh id.
func NewTransaction(name, phone string, amount decimal.Decimal, typ TxType, note string, remind bool) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		ContactName: name,
		PhoneNumber: phone,
		Amount:      amount,
		Type:        typ,
		Date:        time.Now().UnixMilli(),
		Note:        note,
		ReminderSet: remind,
	}
}

// When returns the instant the transaction was recorded.
func (t Transaction) When() time.Time { return time.UnixMilli(t.Date) }

// Day returns the local calendar day of the transaction, used for bucketing.
func (t Transaction) Day() Date { return DateOf(t.When()) }

// Validate checks a transaction for correctness before it is persisted.
// Violated inputs are rejected; the store is never touched.
func (t Transaction) Validate() error {
	if t.ID == "" {
		return errors.New("transaction id is missing")
	}
	if strings.TrimSpace(t.ContactName) == "" {
		return errors.New("contact name is required")
	}
	if strings.TrimSpace(t.PhoneNumber) == "" {
		return errors.New("phone number is required")
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	if t.Type != Debit && t.Type != Credit {
		return fmt.Errorf("unknown transaction type: %q", t.Type)
	}
	return nil
}

// Payment is a partial settlement recorded against one transaction.
//
// Nothing prevents the sum of payments from exceeding the transaction's face
// value; the remaining amount then goes negative and is reported as overpaid
// rather than rejected.
type Payment struct {
	ID            string          `gorm:"primaryKey" json:"id"`
	TransactionID string          `gorm:"index" json:"transactionId"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,2)" json:"amount"`
	Date          int64           `json:"date"` // milliseconds since epoch
	Note          string          `json:"note"`
}

// NewPayment creates a payment dated now with a fresh id.
func NewPayment(transactionID string, amount decimal.Decimal, note string) Payment {
	return Payment{
		ID:            uuid.NewString(),
		TransactionID: transactionID,
		Amount:        amount,
		Date:          time.Now().UnixMilli(),
		Note:          note,
	}
}

// When returns the instant the payment was recorded.
func (p Payment) When() time.Time { return time.UnixMilli(p.Date) }

// Day returns the local calendar day of the payment.
func (p Payment) Day() Date { return DateOf(p.When()) }

// Validate checks a payment for correctness before it is persisted.
func (p Payment) Validate() error {
	if p.ID == "" {
		return errors.New("payment id is missing")
	}
	if p.TransactionID == "" {
		return errors.New("payment transaction id is missing")
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("payment amount must be positive, got %s", p.Amount)
	}
	return nil
}
