package sheets

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/hnpage/ghino"
)

func testSnapshot() ghino.Snapshot {
	tx := ghino.Transaction{
		ID:          "tx-1",
		ContactName: "Alice",
		PhoneNumber: "111",
		Amount:      decimal.NewFromInt(100000),
		Type:        ghino.Debit,
		Date:        1700000000000,
	}
	pay := ghino.Payment{
		ID:            "pay-1",
		TransactionID: "tx-1",
		Amount:        decimal.NewFromInt(40000),
		Date:          1700000100000,
	}
	return ghino.Snapshot{
		Transactions: []ghino.Transaction{tx},
		Payments:     []ghino.Payment{pay},
		Currency:     "VND",
	}
}

func TestSyncReconcilesDeletedRows(t *testing.T) {
	remote := map[string][][]string{
		transactionsSheet: {
			transactionHeader,
			{"Bob", "222", "5000", "credit", "01/01/2023", "", "tx-gone", statusActive},
			{"Alice", "111", "100000", "debit", "14/11/2023", "", "tx-1", statusActive},
		},
		paymentsSheet: {paymentHeader},
	}
	written := map[string][][]string{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sheet := r.URL.Path[len("/values/"):]
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]any{"values": remote[sheet]})
		case http.MethodPut:
			if got := r.Header.Get("Authorization"); got != "Bearer secret" {
				t.Errorf("missing authorization, got %q", got)
			}
			var payload struct {
				Values [][]string `json:"values"`
			}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Fatalf("bad payload: %v", err)
			}
			written[sheet] = payload.Values
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	if err := c.Sync(testSnapshot()); err != nil {
		t.Fatalf("Sync() = %v", err)
	}

	txRows := written[transactionsSheet]
	if len(txRows) != 3 {
		t.Fatalf("got %d transaction rows, want 3 (header, deleted, active)", len(txRows))
	}
	if txRows[1][6] != "tx-gone" || txRows[1][7] != statusDeleted {
		t.Errorf("remote-only row not tagged deleted: %v", txRows[1])
	}
	if txRows[2][6] != "tx-1" || txRows[2][7] != statusActive {
		t.Errorf("local row not tagged active: %v", txRows[2])
	}

	payRows := written[paymentsSheet]
	if len(payRows) != 2 {
		t.Fatalf("got %d payment rows, want 2", len(payRows))
	}
	row := payRows[1]
	if row[0] != "Alice" || row[1] != "111" {
		t.Errorf("payment row does not carry the owning contact: %v", row)
	}
	if row[6] != "pay-1" || row[7] != statusActive {
		t.Errorf("payment row badly tagged: %v", row)
	}
}

func TestSyncEmptyRemote(t *testing.T) {
	written := map[string][][]string{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sheet := r.URL.Path[len("/values/"):]
		switch r.Method {
		case http.MethodGet:
			// no "values" property at all
			json.NewEncoder(w).Encode(map[string]any{})
		case http.MethodPut:
			var payload struct {
				Values [][]string `json:"values"`
			}
			json.NewDecoder(r.Body).Decode(&payload)
			written[sheet] = payload.Values
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if err := c.Sync(testSnapshot()); err != nil {
		t.Fatalf("Sync() = %v", err)
	}
	if got := len(written[transactionsSheet]); got != 2 {
		t.Errorf("got %d transaction rows, want header plus one active", got)
	}
}

func TestSyncRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if err := c.Sync(testSnapshot()); err == nil {
		t.Fatal("Sync() should fail when the service errors")
	}
}
