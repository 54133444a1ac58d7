package redact

import (
	"regexp"
	"strings"
	"testing"
)

func TestMask_PhoneRuns(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"international", "call +1 234 5678 now"},
		{"dashed", "phone 8-900-123-45-67"},
		{"plain_digits", "1234567890"},
		{"spaced", "reach me at 12 34 56 78"},
	}
	sevenDigits := regexp.MustCompile(`\d[\d\-\s]{6,}`)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Mask(tc.in)
			if sevenDigits.MatchString(got) {
				t.Fatalf("Mask(%q) = %q; still contains a long digit run", tc.in, got)
			}
			if !strings.Contains(got, Placeholder) {
				t.Fatalf("Mask(%q) = %q; placeholder missing", tc.in, got)
			}
		})
	}
}

func TestMask_HandlesAndLinks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		bad  string
	}{
		{"handle", "ask @john_doe for details", "@john_doe"},
		{"http", "see http://example.com/page", "http://"},
		{"https_upper", "See HTTPS://EXAMPLE.COM", "EXAMPLE"},
		{"tme", "ping t.me/somebody", "t.me/"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Mask(tc.in)
			if strings.Contains(got, tc.bad) {
				t.Fatalf("Mask(%q) = %q; %q leaked", tc.in, got, tc.bad)
			}
		})
	}
}

func TestMask_ShortNumbersSurvive(t *testing.T) {
	tests := []string{
		"need a boom of 5 meters",
		"2 trucks for 3 days",
		"floor 12, entrance 4",
	}
	for _, in := range tests {
		if got := Mask(in); got != in {
			t.Fatalf("Mask(%q) = %q; want unchanged", in, got)
		}
	}
}

func TestMask_Idempotent(t *testing.T) {
	inputs := []string{
		"call +1 234 5678 or @john_doe, see http://x.com and t.me/foo",
		"plain text without contacts",
		"",
	}
	for _, in := range inputs {
		once := Mask(in)
		twice := Mask(once)
		if once != twice {
			t.Fatalf("Mask not idempotent: once=%q twice=%q", once, twice)
		}
	}
}

func TestMask_MixedText(t *testing.T) {
	in := "Excavator needed, 3 days. Call +7 900 123-45-67 or write @digger_pro."
	got := Mask(in)
	if !strings.Contains(got, "Excavator needed, 3 days.") {
		t.Fatalf("Mask(%q) = %q; harmless text mangled", in, got)
	}
	if strings.Contains(got, "@digger_pro") || strings.Contains(got, "123-45-67") {
		t.Fatalf("Mask(%q) = %q; contact leaked", in, got)
	}
	if n := strings.Count(got, Placeholder); n != 2 {
		t.Fatalf("Mask(%q) = %q; want 2 placeholders, got %d", in, got, n)
	}
}
