package budgeters

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"8/27/2026", NewDate(2026, time.August, 27), false},
		{"12/3/2021", NewDate(2021, time.December, 3), false},
		{"2020-05-01T00:00:00.000Z", NewDate(2020, time.May, 1), false},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			if tc.err {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want error", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	d := NewDate(2026, time.August, 28)

	ts := d.Timestamp()
	if ts != "2026-08-28T00:00:00.000Z" {
		t.Errorf("Timestamp() = %q, want millisecond-precision UTC form", ts)
	}

	back, err := ParseTimestamp(ts)
	if err != nil {
		t.Fatalf("ParseTimestamp(%q) unexpected error: %v", ts, err)
	}
	if back != d {
		t.Errorf("round trip gave %v, want %v", back, d)
	}
}

func TestParseTimestampRejectsDateOnly(t *testing.T) {
	if _, err := ParseTimestamp("2026-08-28"); err == nil {
		t.Error("ParseTimestamp accepted a date without time, want error")
	}
}

func TestPeriodNext(t *testing.T) {
	tests := []struct {
		name string
		in   Period
		want Period
	}{
		{"mid year", Period{2026, time.August}, Period{2026, time.September}},
		{"year boundary", Period{2026, time.December}, Period{2027, time.January}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Next(); got != tc.want {
				t.Errorf("%v.Next() = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestPeriodFirstDay(t *testing.T) {
	p := Period{2026, time.September}
	if got := p.FirstDay(); got != NewDate(2026, time.September, 1) {
		t.Errorf("FirstDay() = %v, want 2026-09-01", got)
	}
}

func TestNewPeriod(t *testing.T) {
	p, err := NewPeriod("2026", "8")
	if err != nil {
		t.Fatalf("NewPeriod unexpected error: %v", err)
	}
	if p != (Period{2026, time.August}) {
		t.Errorf("NewPeriod = %v, want 2026/08", p)
	}
	if p.String() != "2026/08" {
		t.Errorf("String() = %q, want %q", p.String(), "2026/08")
	}

	for _, bad := range [][2]string{{"twenty", "8"}, {"2026", "month"}, {"2026", "13"}, {"2026", "0"}} {
		if _, err := NewPeriod(bad[0], bad[1]); err == nil {
			t.Errorf("NewPeriod(%q, %q) succeeded, want error", bad[0], bad[1])
		}
	}
}
