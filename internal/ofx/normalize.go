// Package ofx turns a generic tabular source into an OFX 1.02 SGML
// statement document. The whole package is pure: one conversion is a
// computation from immutable input (plus an explicit reference time) to
// output text, so concurrent conversions need no locking.
package ofx

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// autoLayouts are tried in order when no explicit date layout is given.
// More specific layouts come first so e.g. a timestamp is not truncated
// by a date-only layout.
var autoLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"20060102",
}

// ParseDate normalizes a raw cell into a calendar date. If layout is
// non-empty the value must match that Go reference layout exactly;
// otherwise the common layouts are tried in order. The second return is
// false when the value is empty or unparseable, and the row is then
// dropped by the caller rather than surfaced as an error.
func ParseDate(raw, layout string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}

	if strings.TrimSpace(layout) != "" {
		t, err := time.Parse(strings.TrimSpace(layout), value)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	for _, l := range autoLayouts {
		if t, err := time.Parse(l, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseAmount normalizes a raw cell into a signed decimal amount,
// negating it when invert is set. Unparseable or empty input reports
// false and the row is dropped.
func ParseAmount(raw string, invert bool) (decimal.Decimal, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return decimal.Decimal{}, false
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if invert {
		amount = amount.Neg()
	}
	return amount, true
}
