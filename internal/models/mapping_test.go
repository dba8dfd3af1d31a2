package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestColumnMapping_Validate(t *testing.T) {
	columns := []string{"Date", "Amount", "Payee", "Description"}

	m := ColumnMapping{DateColumn: "Date", AmountColumn: "Amount"}
	if err := m.Validate(columns); err != nil {
		t.Errorf("Expected valid mapping, got error: %v", err)
	}

	m = ColumnMapping{DateColumn: "Date", AmountColumn: "Amount", NameColumn: "Payee", MemoColumn: "Description"}
	if err := m.Validate(columns); err != nil {
		t.Errorf("Expected valid mapping with optional columns, got error: %v", err)
	}
}

func TestColumnMapping_Validate_MissingColumn(t *testing.T) {
	columns := []string{"Date", "Amount"}

	m := ColumnMapping{DateColumn: "Posted", AmountColumn: "Amount"}
	if err := m.Validate(columns); err == nil {
		t.Error("Expected error for missing date column")
	}

	m = ColumnMapping{DateColumn: "Date", AmountColumn: "Amount", MemoColumn: "Notes"}
	if err := m.Validate(columns); err == nil {
		t.Error("Expected error for missing memo column")
	}
}

func TestColumnMapping_Validate_Required(t *testing.T) {
	columns := []string{"Date", "Amount"}

	if err := (ColumnMapping{AmountColumn: "Amount"}).Validate(columns); err == nil {
		t.Error("Expected error for empty date column")
	}
	if err := (ColumnMapping{DateColumn: "Date"}).Validate(columns); err == nil {
		t.Error("Expected error for empty amount column")
	}
}

func TestParseAccountType(t *testing.T) {
	cases := map[string]AccountType{
		"CHECKING":   AccountTypeChecking,
		"savings":    AccountTypeSavings,
		" CreditLine": AccountTypeCreditLine,
	}
	for in, want := range cases {
		got, err := ParseAccountType(in)
		if err != nil {
			t.Errorf("ParseAccountType(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseAccountType(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := ParseAccountType("MONEYMRKT"); err == nil {
		t.Error("Expected error for unsupported account type")
	}
}

func TestTransaction_Type(t *testing.T) {
	if (Transaction{Amount: dec("0")}).Type() != "CREDIT" {
		t.Error("Expected zero amount to be CREDIT")
	}
	if (Transaction{Amount: dec("12.50")}).Type() != "CREDIT" {
		t.Error("Expected positive amount to be CREDIT")
	}
	if (Transaction{Amount: dec("-0.01")}).Type() != "DEBIT" {
		t.Error("Expected negative amount to be DEBIT")
	}
}
