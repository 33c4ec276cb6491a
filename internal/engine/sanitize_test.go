package engine

import "testing"

func TestSanitizeNumericText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain digits pass through", "42", "42"},
		{"decimal amount passes through", "45.00", "45.00"},
		{"currency symbol stripped", "$45.00", "45.00"},
		{"thousands separators stripped", "1,234.56", "1234.56"},
		{"letters stripped", "12ab.cd34", "12.34"},
		{"spaces stripped", "4111 1111", "41111111"},
		{"second decimal point collapsed", "1.2.3", "1.23"},
		{"adjacent decimal points collapsed", "12..34", "12.34"},
		{"many decimal points collapsed", "1.2.3.4", "1.234"},
		{"leading point gains zero", ".5", "0.5"},
		{"leading points gain single zero", "..5", "0.5"},
		{"minus sign stripped", "-5", "5"},
		{"plus sign stripped", "+5", "5"},
		{"empty stays empty", "", ""},
		{"pure junk becomes empty", "abc$%", ""},
		{"lone point becomes zero point", ".", "0."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeNumericText(tt.raw); got != tt.want {
				t.Errorf("SanitizeNumericText(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSanitizeNumericTextIdempotent(t *testing.T) {
	inputs := []string{
		"", "42", "45.00", "$1,234.56", "1.2.3.4", "..5", "abc", "-5.5-",
		"12a34b56.78.90", "   9.99   ", "....", "0.5", "4111 1111 1111 1111",
	}

	for _, raw := range inputs {
		once := SanitizeNumericText(raw)
		twice := SanitizeNumericText(once)
		if once != twice {
			t.Errorf("SanitizeNumericText not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}
