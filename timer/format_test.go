package timer

import (
	"testing"
	"time"
)

func TestFormatDurationUnitSelection(t *testing.T) {
	cases := []struct {
		d        time.Duration
		expected string
	}{
		{0, "0 usec"},
		{1911 * time.Nanosecond, "1.91 usec"},
		{500 * time.Microsecond, "500 usec"},
		{999 * time.Microsecond, "999 usec"},
		{time.Millisecond, "1 msec"},
		{1500 * time.Microsecond, "1.5 msec"},
		{250 * time.Millisecond, "250 msec"},
		{999 * time.Millisecond, "999 msec"},
		{time.Second, "1 sec"},
		{2500 * time.Millisecond, "2.5 sec"},
		{90 * time.Second, "90 sec"},
	}
	for _, c := range cases {
		if formatted := FormatDuration(c.d, 3); formatted != c.expected {
			t.Errorf("Expected %v to format as %q, got %q", c.d, c.expected, formatted)
		}
	}
}

func TestFormatDurationPrecision(t *testing.T) {
	d := 1911 * time.Nanosecond
	if formatted := FormatDuration(d, 4); formatted != "1.911 usec" {
		t.Errorf("Expected '1.911 usec', got %q", formatted)
	}
	if formatted := FormatDuration(d, 2); formatted != "1.9 usec" {
		t.Errorf("Expected '1.9 usec', got %q", formatted)
	}
	// non-positive precision falls back to the default
	if formatted := FormatDuration(d, 0); formatted != "1.91 usec" {
		t.Errorf("Expected '1.91 usec', got %q", formatted)
	}
}
