package ofx

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestGenerateFITID(t *testing.T) {
	date := mustDate(t, "2024-01-05")
	amount := decimal.NewFromFloat(-50.5)

	got := GenerateFITID(3, date, amount, "")
	want := "20240105--50.50-3"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestGenerateFITID_Memo(t *testing.T) {
	date := mustDate(t, "2024-01-05")
	amount := decimal.NewFromInt(100)

	got := GenerateFITID(0, date, amount, "  Grocery Store #42  ")
	want := "20240105-100.00-0-GroceryStore#42"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestGenerateFITID_MemoTruncation(t *testing.T) {
	date := mustDate(t, "2024-01-05")
	amount := decimal.NewFromInt(1)

	long := "abcdefghijklmnopqrstuvwxyz"
	got := GenerateFITID(7, date, amount, long)
	if !strings.HasSuffix(got, "-abcdefghijklmnopqrst") {
		t.Errorf("Expected memo truncated to 20 chars, got %q", got)
	}
}

func TestGenerateFITID_Deterministic(t *testing.T) {
	date := mustDate(t, "2024-01-05")
	amount := decimal.NewFromFloat(12.5)

	a := GenerateFITID(1, date, amount, "memo")
	b := GenerateFITID(1, date, amount, "memo")
	if a != b {
		t.Errorf("Expected identical IDs for identical input, got %q and %q", a, b)
	}
}

func TestGenerateFITID_IndexChangesResult(t *testing.T) {
	date := mustDate(t, "2024-01-05")
	amount := decimal.NewFromFloat(12.5)

	a := GenerateFITID(1, date, amount, "memo")
	b := GenerateFITID(2, date, amount, "memo")
	if a == b {
		t.Errorf("Expected different IDs for different source indices, both were %q", a)
	}
}

func TestGenerateFITID_NoWhitespace(t *testing.T) {
	date := mustDate(t, "2024-01-05")
	amount := decimal.NewFromInt(5)

	got := GenerateFITID(0, date, amount, "a b\tc\nd")
	if strings.ContainsAny(got, " \t\n") {
		t.Errorf("Expected no whitespace in FITID, got %q", got)
	}
}
