package engine

import "github.com/dustin/go-humanize"

// FormatWithSeparators renders an amount with thousands separators and
// exactly two decimal places, e.g. 1234.5 becomes "1,234.50".
func FormatWithSeparators(value float64) string {
	return humanize.FormatFloat("#,###.##", value)
}
