package utils

import "testing"

func TestFormatCount(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		999:     "999",
		1500:    "1,500",
		1234567: "1,234,567",
	}
	for in, want := range cases {
		if got := FormatCount(in); got != want {
			t.Errorf("FormatCount(%d): got %q, want %q", in, got, want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		1500000: "1.5 M",
		2500:    "2.5 K",
		999:     "999",
		-1200.5: "-1.2 K",
	}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v): got %q, want %q", in, got, want)
		}
	}
}

func TestParseIntDefault(t *testing.T) {
	if got := ParseIntDefault("", 7); got != 7 {
		t.Errorf("empty: got %d, want 7", got)
	}
	if got := ParseIntDefault("42", 7); got != 42 {
		t.Errorf("valid: got %d, want 42", got)
	}
	if got := ParseIntDefault("nope", 7); got != 7 {
		t.Errorf("malformed: got %d, want 7", got)
	}
}
