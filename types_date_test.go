package ghino

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2023-11-15", NewDate(2023, time.November, 15), false},
		{"2023-1-2", NewDate(2023, time.January, 2), false},
		{"15/11/2023", Date{}, true},
		{"", Date{}, true},
	}
	for _, tc := range tests {
		got, err := ParseDate(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestStartOf(t *testing.T) {
	wednesday := NewDate(2023, time.November, 15)

	tests := []struct {
		period Period
		want   Date
	}{
		{Daily, NewDate(2023, time.November, 15)},
		{Weekly, NewDate(2023, time.November, 13)}, // weeks start on Monday
		{Monthly, NewDate(2023, time.November, 1)},
		{Yearly, NewDate(2023, time.January, 1)},
	}
	for _, tc := range tests {
		if got := wednesday.StartOf(tc.period); got != tc.want {
			t.Errorf("StartOf(%s) = %s, want %s", tc.period, got, tc.want)
		}
	}
}

func TestStartOfWeekOnSunday(t *testing.T) {
	sunday := NewDate(2023, time.November, 19)
	if got := sunday.StartOf(Weekly); got != NewDate(2023, time.November, 13) {
		t.Errorf("StartOf(Weekly) on a Sunday = %s, want the previous Monday", got)
	}
}

func TestEndOf(t *testing.T) {
	d := NewDate(2023, time.February, 10)

	if got := d.EndOf(Monthly); got != NewDate(2023, time.February, 28) {
		t.Errorf("EndOf(Monthly) = %s", got)
	}
	if got := d.EndOf(Yearly); got != NewDate(2023, time.December, 31) {
		t.Errorf("EndOf(Yearly) = %s", got)
	}
}

func TestDateNormalization(t *testing.T) {
	// day arithmetic rolls over month boundaries
	if got := NewDate(2023, time.January, 31).Add(1); got != NewDate(2023, time.February, 1) {
		t.Errorf("Add(1) = %s", got)
	}
	if got := NewDate(2023, time.March, 1).Add(-1); got != NewDate(2023, time.February, 28) {
		t.Errorf("Add(-1) = %s", got)
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(NewDate(2023, time.November, 1), NewDate(2023, time.November, 30))

	if !r.Contains(NewDate(2023, time.November, 1)) || !r.Contains(NewDate(2023, time.November, 30)) {
		t.Error("range bounds must be inclusive")
	}
	if r.Contains(NewDate(2023, time.October, 31)) || r.Contains(NewDate(2023, time.December, 1)) {
		t.Error("range must exclude outside dates")
	}
}

func TestParsePeriod(t *testing.T) {
	for _, p := range Periods() {
		got, err := ParsePeriod(p.Name())
		if err != nil || got != p {
			t.Errorf("ParsePeriod(%q) = %v, %v", p.Name(), got, err)
		}
	}
	if _, err := ParsePeriod("fortnight"); err == nil {
		t.Error("ParsePeriod must reject unknown periods")
	}
}
