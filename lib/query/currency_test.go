package query

import "testing"

// Assertions target the fixed fallback format only; the locale-backed
// formatter output depends on CLDR data and is not pinned here.
func TestFormatSalaryFixed(t *testing.T) {
	tests := []struct {
		salary float64
		want   string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{999.9, "$999.90"},
		{1_234.56, "$1,234.56"},
		{45_678.9, "$45,678.90"},
		{149_999.99, "$149,999.99"},
		{1_000_000, "$1,000,000.00"},
		{-1_234.56, "-$1,234.56"},
	}

	for _, tt := range tests {
		if got := FormatSalaryFixed(tt.salary); got != tt.want {
			t.Errorf("FormatSalaryFixed(%.2f) = %q, want %q", tt.salary, got, tt.want)
		}
	}
}

func TestNewSalaryFormatterNeverNil(t *testing.T) {
	format := NewSalaryFormatter()
	if format == nil {
		t.Fatal("expected a formatter")
	}

	got := format(51_234.5)
	if got == "" {
		t.Fatal("expected a formatted salary")
	}
	if got[0] != '$' {
		t.Errorf("expected a dollar-prefixed string, got %q", got)
	}
}
