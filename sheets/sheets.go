// Package sheets mirrors the recorded history to a remote sheet service.
//
// The sync is one-way and reconciling: every local record is written with an
// "active" status, and rows found remotely that no longer exist locally are
// kept but re-tagged "deleted" instead of being physically removed.
package sheets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"

	"github.com/hnpage/ghino"
)

const (
	transactionsSheet = "Transactions"
	paymentsSheet     = "Payments"

	statusActive  = "active"
	statusDeleted = "deleted"

	rowDateFormat = "02/01/2006"
)

var transactionHeader = []string{"Name", "Phone", "Amount", "Type", "Date", "Note", "Transaction ID", "Status"}
var paymentHeader = []string{"Name", "Phone", "Amount", "Date", "Note", "Transaction ID", "Payment ID", "Status"}

// Client talks to a remote sheet service exposing one endpoint per sheet:
// GET  {base}/values/{sheet} -> {"values": [[...], ...]}
// PUT  {base}/values/{sheet} with the same shape.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// NewClient creates a sync client for the given service.
func NewClient(baseURL, token string) *Client {
	return &Client{BaseURL: baseURL, Token: token, HTTP: new(http.Client)}
}

// Sync pushes the snapshot to the remote sheets, reconciling against their
// current content. A failure aborts only this sync attempt; local data is
// never touched.
func (c *Client) Sync(snap ghino.Snapshot) error {
	remoteTx, err := c.fetch(transactionsSheet)
	if err != nil {
		return fmt.Errorf("could not read remote transactions: %w", err)
	}
	remotePay, err := c.fetch(paymentsSheet)
	if err != nil {
		return fmt.Errorf("could not read remote payments: %w", err)
	}

	if err := c.put(transactionsSheet, reconcileTransactions(snap, remoteTx)); err != nil {
		return fmt.Errorf("could not write transactions sheet: %w", err)
	}
	if err := c.put(paymentsSheet, reconcilePayments(snap, remotePay)); err != nil {
		return fmt.Errorf("could not write payments sheet: %w", err)
	}
	return nil
}

// reconcileTransactions builds the full transaction sheet: header, remote
// rows that vanished locally (re-tagged deleted), then all local rows.
func reconcileTransactions(snap ghino.Snapshot, remote [][]string) [][]string {
	local := make(map[string]bool, len(snap.Transactions))
	for _, tx := range snap.Transactions {
		local[tx.ID] = true
	}

	rows := [][]string{transactionHeader}
	for i, row := range remote {
		if i == 0 || len(row) < 7 {
			continue // header or malformed
		}
		if id := row[6]; !local[id] {
			rows = append(rows, []string{row[0], row[1], row[2], row[3], row[4], row[5], id, statusDeleted})
		}
	}
	for _, tx := range snap.Transactions {
		rows = append(rows, []string{
			tx.ContactName,
			tx.PhoneNumber,
			tx.Amount.String(),
			string(tx.Type),
			tx.When().Format(rowDateFormat),
			tx.Note,
			tx.ID,
			statusActive,
		})
	}
	return rows
}

// reconcilePayments builds the full payment sheet, cross-referencing each
// payment's owning transaction for the contact columns.
func reconcilePayments(snap ghino.Snapshot, remote [][]string) [][]string {
	local := make(map[string]bool, len(snap.Payments))
	for _, p := range snap.Payments {
		local[p.ID] = true
	}

	rows := [][]string{paymentHeader}
	seen := make(map[string]bool)
	for i, row := range remote {
		if i == 0 || len(row) < 7 {
			continue
		}
		if id := row[6]; !local[id] && !seen[id] {
			rows = append(rows, []string{row[0], row[1], row[2], row[3], row[4], row[5], id, statusDeleted})
			seen[id] = true
		}
	}
	for _, p := range snap.Payments {
		name, phone := "unknown", "unknown"
		if tx, ok := snap.Transaction(p.TransactionID); ok {
			name, phone = tx.ContactName, tx.PhoneNumber
		}
		rows = append(rows, []string{
			name,
			phone,
			p.Amount.String(),
			p.When().Format(rowDateFormat),
			p.Note,
			p.TransactionID,
			p.ID,
			statusActive,
		})
	}
	return rows
}

// fetch reads the current rows of a sheet.
func (c *Client) fetch(sheet string) ([][]string, error) {
	req, err := http.NewRequest(http.MethodGet, c.BaseURL+"/values/"+sheet, nil)
	if err != nil {
		return nil, err
	}
	c.authorize(req)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet service returned %s", resp.Status)
	}

	var jobj any
	if err := json.NewDecoder(resp.Body).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse sheet response: %w", err)
	}
	// An absent "values" property means an empty sheet, not an error.
	jval, err := jsonpath.Get("$.values", jobj)
	if err != nil {
		return nil, nil
	}
	jrows, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected sheet payload: %v", jval)
	}
	rows := make([][]string, 0, len(jrows))
	for _, jrow := range jrows {
		jcells, ok := jrow.([]any)
		if !ok {
			continue
		}
		row := make([]string, 0, len(jcells))
		for _, cell := range jcells {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// put overwrites a sheet with the given rows.
func (c *Client) put(sheet string, rows [][]string) error {
	body, err := json.Marshal(map[string]any{"values": rows})
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPut, c.BaseURL+"/values/"+sheet, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sheet service returned %s", resp.Status)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
}
