package query

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SalaryFormatter renders a salary as a currency string.
type SalaryFormatter func(salary float64) string

// NewSalaryFormatter returns a US-English locale formatter for salaries.
// If the locale tag cannot be resolved it falls back to FormatSalaryFixed,
// so construction always succeeds.
func NewSalaryFormatter() SalaryFormatter {
	tag, err := language.Parse("en-US")
	if err != nil {
		return FormatSalaryFixed
	}

	printer := message.NewPrinter(tag)
	return func(salary float64) string {
		return printer.Sprintf("$%.2f", salary)
	}
}

// FormatSalaryFixed formats a salary as "$X,XXX.XX" without any locale
// dependency. It never fails and is what tests assert against.
func FormatSalaryFixed(salary float64) string {
	negative := salary < 0
	if negative {
		salary = -salary
	}

	cents := int64(math.Round(salary * 100))
	intStr := groupThousands(cents / 100)

	result := fmt.Sprintf("$%s.%02d", intStr, cents%100)
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands renders n with comma separators every three digits.
func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
