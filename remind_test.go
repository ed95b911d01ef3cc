package ghino

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestSchedulerDeliversAfterDelay(t *testing.T) {
	var buf bytes.Buffer
	s := NewScheduler(WriterNotifier{W: &buf})
	s.Delay = 10 * time.Millisecond

	tx := NewTransaction("Anna", "0900000001", decimal.NewFromInt(100000), Debit, "", true)
	s.Schedule(tx, "VND")

	if buf.Len() != 0 {
		t.Error("notification delivered before the delay elapsed")
	}
	s.Wait()

	got := buf.String()
	if !strings.Contains(got, "Anna") {
		t.Errorf("notification body misses the contact name: %q", got)
	}
	if !strings.Contains(got, "Debt reminder") {
		t.Errorf("notification misses the title: %q", got)
	}
}

func TestSchedulerWaitsForAll(t *testing.T) {
	var buf bytes.Buffer
	s := NewScheduler(WriterNotifier{W: &buf})
	s.Delay = time.Millisecond

	for i := 0; i < 3; i++ {
		s.Schedule(NewTransaction("Anna", "0900000001", decimal.NewFromInt(int64(i+1)), Debit, "", true), "VND")
	}
	s.Wait()

	if got := strings.Count(buf.String(), "\n"); got != 3 {
		t.Errorf("got %d notifications, want 3", got)
	}
}

func TestNoteIDStable(t *testing.T) {
	if noteID("tx-1") != noteID("tx-1") {
		t.Error("noteID is not stable for the same transaction")
	}
	if noteID("tx-1") == noteID("tx-2") {
		t.Error("noteID collides for different transactions")
	}
}
