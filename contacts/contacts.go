// Package contacts provides a read-only lookup of (name, phone) pairs used
// to pre-fill the transaction entry commands. It is backed by a plain CSV
// file standing in for the platform contact book.
package contacts

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Entry is one directory record.
type Entry struct {
	Name  string
	Phone string
}

// Directory is an immutable, in-memory contact lookup keyed by phone number.
type Directory struct {
	byPhone map[string]string
}

// Empty returns a directory with no entries.
func Empty() *Directory {
	return &Directory{byPhone: make(map[string]string)}
}

// Load reads a directory from a CSV file of "name,phone" rows. A header row
// is tolerated. A missing or unreadable file is an error the caller is
// expected to degrade on, not fail on.
func Load(path string) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open contact directory: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a directory from CSV content.
func Read(r io.Reader) (*Directory, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	d := &Directory{byPhone: make(map[string]string)}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot parse contact directory: %w", err)
		}
		if len(rec) < 2 {
			continue
		}
		name, phone := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])
		if name == "" || phone == "" || strings.EqualFold(name, "name") {
			continue
		}
		d.byPhone[phone] = name
	}
	return d, nil
}

// Name returns the display name recorded for a phone number.
func (d *Directory) Name(phone string) (string, bool) {
	name, ok := d.byPhone[phone]
	return name, ok
}

// All returns every entry sorted by name.
func (d *Directory) All() []Entry {
	entries := make([]Entry, 0, len(d.byPhone))
	for phone, name := range d.byPhone {
		entries = append(entries, Entry{Name: name, Phone: phone})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Phone < entries[j].Phone
	})
	return entries
}
