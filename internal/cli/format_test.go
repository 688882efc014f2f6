package cli

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1000", 1000},
		{" 250 ", 250},
		{"-40", -40},
		{"", 0},
		{"abc", 0},
		{"12.5", 0},
	}
	for _, tt := range tests {
		if got := ParseAmount(tt.in); got != tt.want {
			t.Fatalf("ParseAmount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-5000, "-5,000"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(1234, "MRU"); got != "1,234 MRU" {
		t.Fatalf("FormatMoney = %q, want %q", got, "1,234 MRU")
	}
	if got := FormatMoney(1234, ""); got != "1,234" {
		t.Fatalf("FormatMoney without currency = %q, want %q", got, "1,234")
	}
}

func TestFormatSigned(t *testing.T) {
	if got := FormatSigned(700, "MRU"); got != "+700 MRU" {
		t.Fatalf("FormatSigned(700) = %q, want +700 MRU", got)
	}
	if got := FormatSigned(-200, "MRU"); got != "-200 MRU" {
		t.Fatalf("FormatSigned(-200) = %q, want -200 MRU", got)
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("0123456789abcdef"); got != "01234567" {
		t.Fatalf("ShortID = %q, want 01234567", got)
	}
	if got := ShortID("ab"); got != "ab" {
		t.Fatalf("ShortID short input = %q, want ab", got)
	}
}
