package core

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Tolerant parsers for spreadsheet cells. Source data is hand-maintained, so
// parse failures degrade to zero values instead of failing the load: an
// unparsable amount becomes 0, an unparsable date becomes the missing Date.

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2006-01-02 15:04:05",
	"02/01/2006 15:04:05",
	time.RFC3339,
}

// ParseDate parses a spreadsheet date cell. Both ISO (2006-01-02) and
// Brazilian (02/01/2006) forms are accepted; anything else yields the
// missing Date.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
		}
	}
	return Date{}
}

// ParseAmount parses a monetary or rate cell. It accepts plain dot-decimal
// values ("1234.56"), Brazilian formatting with thousands dots and a decimal
// comma ("1.234,56", "0,05"), and an optional leading currency symbol.
// Unparsable values coerce to zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		// Both separators present: the rightmost one is the decimal mark.
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
