package ofx

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// memoDigestLen caps how much of the memo participates in the FITID.
const memoDigestLen = 20

// GenerateFITID derives the per-transaction identifier consuming software
// uses for duplicate detection. The result is deterministic for identical
// inputs; uniqueness within one statement follows from sourceIndex being
// unique per row. Format: YYYYMMDD-<amount, two decimals>-<sourceIndex>,
// plus the first 20 characters of the trimmed memo when one is present,
// with all whitespace removed from the final string.
func GenerateFITID(sourceIndex int, date time.Time, amount decimal.Decimal, memo string) string {
	digest := fmt.Sprintf("%s-%s-%d", date.Format("20060102"), amount.StringFixed(2), sourceIndex)

	if trimmed := strings.TrimSpace(memo); trimmed != "" {
		runes := []rune(trimmed)
		if len(runes) > memoDigestLen {
			runes = runes[:memoDigestLen]
		}
		digest = digest + "-" + string(runes)
	}

	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, digest)
}
