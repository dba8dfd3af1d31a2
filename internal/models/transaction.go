package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType is the OFX account type reported in BANKACCTFROM.
type AccountType string

const (
	AccountTypeChecking   AccountType = "CHECKING"
	AccountTypeSavings    AccountType = "SAVINGS"
	AccountTypeCreditLine AccountType = "CREDITLINE"
)

// ParseAccountType parses a user-supplied account type string.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(strings.ToUpper(strings.TrimSpace(s))) {
	case AccountTypeChecking:
		return AccountTypeChecking, nil
	case AccountTypeSavings:
		return AccountTypeSavings, nil
	case AccountTypeCreditLine:
		return AccountTypeCreditLine, nil
	default:
		return "", fmt.Errorf("invalid account type: %q (want CHECKING, SAVINGS or CREDITLINE)", s)
	}
}

// AccountMeta holds the user-supplied account details written into the
// statement. All fields except Type are opaque strings; a blank field is
// rendered as an empty tag value.
type AccountMeta struct {
	BankID    string      `json:"bankId"`
	AccountID string      `json:"accountId"`
	Type      AccountType `json:"accountType"`
	Currency  string      `json:"currency"`
	Org       string      `json:"org"`
	FID       string      `json:"fid"`
}

// Transaction is one normalized statement transaction. SourceIndex is the
// row's position in the original source and feeds FITID generation only;
// ordering in the document is by Date.
type Transaction struct {
	Date        time.Time
	Amount      decimal.Decimal
	Name        string
	Memo        string
	SourceIndex int
	FITID       string
}

// Type returns the OFX transaction type. Zero amounts count as CREDIT.
func (t Transaction) Type() string {
	if t.Amount.Sign() >= 0 {
		return "CREDIT"
	}
	return "DEBIT"
}
