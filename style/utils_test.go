package style

import (
	"testing"
	"time"
)

func TestFitSize(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		maxW, maxH int
		wantW      int
		wantH      int
	}{
		{"wide image limited by width", 800, 400, 200, 200, 200, 100},
		{"tall image limited by height", 300, 600, 200, 200, 100, 200},
		{"already smaller scales up", 100, 100, 200, 200, 200, 200},
		{"square into square", 512, 512, 128, 128, 128, 128},
		{"degenerate source", 0, 240, 200, 200, 1, 1},
		{"never below one pixel", 10000, 1, 50, 50, 50, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h := FitSize(tc.w, tc.h, tc.maxW, tc.maxH)
			if w != tc.wantW || h != tc.wantH {
				t.Errorf("FitSize(%d, %d, %d, %d) = (%d, %d), want (%d, %d)",
					tc.w, tc.h, tc.maxW, tc.maxH, w, h, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestTruncateStart(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		maxLen      int
		expected    string
		shouldTrunc bool
	}{
		{"shorter than max", "hello", 10, "hello", false},
		{"exact length", "hello", 5, "hello", false},
		{"keeps path tail", "/roms/nes/Super Game (USA).nes", 20, "...er Game (USA).nes", true},
		{"maxLen 3", "abcdef", 3, "def", true},
		{"empty string", "", 5, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, truncated := TruncateStart(tc.input, tc.maxLen)
			if got != tc.expected {
				t.Errorf("TruncateStart(%q, %d) = %q, want %q", tc.input, tc.maxLen, got, tc.expected)
			}
			if truncated != tc.shouldTrunc {
				t.Errorf("TruncateStart(%q, %d) truncated = %v, want %v", tc.input, tc.maxLen, truncated, tc.shouldTrunc)
			}
		})
	}
}

func TestTruncateEnd(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		maxLen      int
		expected    string
		shouldTrunc bool
	}{
		{"shorter than max", "hello", 10, "hello", false},
		{"exact length", "hello", 5, "hello", false},
		{"truncates with ellipsis", "Super Mario Bros. 3 (USA)", 12, "Super Mar...", true},
		{"maxLen 3", "abcdef", 3, "abc", true},
		{"maxLen 1", "abcdef", 1, "a", true},
		{"empty string", "", 5, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, truncated := TruncateEnd(tc.input, tc.maxLen)
			if got != tc.expected {
				t.Errorf("TruncateEnd(%q, %d) = %q, want %q", tc.input, tc.maxLen, got, tc.expected)
			}
			if truncated != tc.shouldTrunc {
				t.Errorf("TruncateEnd(%q, %d) truncated = %v, want %v", tc.input, tc.maxLen, truncated, tc.shouldTrunc)
			}
		})
	}
}

func TestTruncateToWidth(t *testing.T) {
	face := *FontFace()
	long := "The Legend of the Extremely Long Game Title (Europe) (Rev 2)"

	got, truncated := TruncateToWidth(long, face, 120)
	if !truncated {
		t.Fatal("expected truncation for long title at 120px")
	}
	if len(got) < 3 || got[len(got)-3:] != "..." {
		t.Errorf("TruncateToWidth result %q missing ellipsis", got)
	}
	if w := MeasureWidth(got); w > 120 {
		t.Errorf("truncated width = %.1f, want <= 120", w)
	}

	got, truncated = TruncateToWidth("OK", face, 500)
	if truncated || got != "OK" {
		t.Errorf("TruncateToWidth(\"OK\") = (%q, %v), want unchanged", got, truncated)
	}

	if got, _ := TruncateToWidth("", face, 10); got != "" {
		t.Errorf("TruncateToWidth(\"\") = %q, want \"\"", got)
	}
}

func TestRunePrefix(t *testing.T) {
	tests := []struct {
		input    string
		n        int
		expected string
	}{
		{"abcdef", 3, "abc"},
		{"abcdef", 0, ""},
		{"abcdef", 10, "abcdef"},
		{"ポケモン", 2, "ポケ"},
	}

	for _, tc := range tests {
		if got := runePrefix(tc.input, tc.n); got != tc.expected {
			t.Errorf("runePrefix(%q, %d) = %q, want %q", tc.input, tc.n, got, tc.expected)
		}
	}
}

func TestFormatLastPlayed(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{"zero time", time.Time{}, "Never"},
		{"today", now, "Today"},
		{"yesterday", now.AddDate(0, 0, -1), "Yesterday"},
		{"old year", time.Date(2019, time.March, 9, 12, 0, 0, 0, time.Local), "Mar 9, 2019"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatLastPlayed(tc.input); got != tc.expected {
				t.Errorf("FormatLastPlayed(%v) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "Unknown" {
		t.Errorf("FormatDate(zero) = %q, want %q", got, "Unknown")
	}
	d := time.Date(2024, time.July, 4, 0, 0, 0, 0, time.Local)
	if got := FormatDate(d); got != "Jul 4, 2024" {
		t.Errorf("FormatDate = %q, want %q", got, "Jul 4, 2024")
	}
}
