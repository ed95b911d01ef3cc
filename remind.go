package ghino

import (
	"fmt"
	"hash/fnv"
	"io"
	"sync"
	"time"
)

// DefaultReminderDelay is the fixed delay between scheduling a reminder and
// delivering its notification.
const DefaultReminderDelay = 10 * time.Second

// Notification is the payload delivered when a reminder fires.
type Notification struct {
	ID    uint32 // derived from the transaction id
	Title string
	Body  string // amount + contact name
}

// Notifier delivers a notification to the user.
type Notifier interface {
	Notify(Notification) error
}

// WriterNotifier delivers notifications as lines on a writer.
type WriterNotifier struct {
	W io.Writer
}

func (n WriterNotifier) Notify(note Notification) error {
	_, err := fmt.Fprintf(n.W, "[%d] %s: %s\n", note.ID, note.Title, note.Body)
	return err
}

// Scheduler enqueues one-shot delayed reminder notifications.
//
// Scheduling is fire-and-forget: there is no cancellation path, and a failed
// delivery only affects that notification.
type Scheduler struct {
	Delay    time.Duration
	Notifier Notifier

	wg sync.WaitGroup
}

// NewScheduler creates a scheduler with the default fixed delay.
func NewScheduler(n Notifier) *Scheduler {
	return &Scheduler{Delay: DefaultReminderDelay, Notifier: n}
}

// Schedule enqueues a reminder for the transaction. The notification id is
// derived from the transaction id, so rescheduling the same transaction
// replaces the previous notification on platforms that coalesce by id.
func (s *Scheduler) Schedule(tx Transaction, currency string) {
	note := Notification{
		ID:    noteID(tx.ID),
		Title: "Debt reminder",
		Body:  fmt.Sprintf("Payment of %s due with %s", M(tx.Amount, currency), tx.ContactName),
	}
	s.wg.Add(1)
	time.AfterFunc(s.Delay, func() {
		defer s.wg.Done()
		// Delivery errors are deliberately dropped: the reminder path is
		// fire-and-forget and must not fail the recording flow.
		_ = s.Notifier.Notify(note)
	})
}

// Wait blocks until every scheduled notification has been delivered.
// Short-lived processes call this before exiting.
func (s *Scheduler) Wait() { s.wg.Wait() }

func noteID(txID string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(txID))
	return h.Sum32()
}
