package models

import "fmt"

// ColumnMapping identifies which source columns supply each transaction
// field. DateColumn and AmountColumn are required. NameColumn and
// MemoColumn are optional; the empty string means the column is not
// mapped, so callers never need a "(none)" placeholder value.
type ColumnMapping struct {
	DateColumn   string `json:"dateColumn"`
	AmountColumn string `json:"amountColumn"`
	NameColumn   string `json:"nameColumn,omitempty"`
	MemoColumn   string `json:"memoColumn,omitempty"`
}

// Validate checks the mapping against the source's column set. Every
// mapped column must exist; a missing column fails the whole conversion
// before any output is produced.
func (m ColumnMapping) Validate(columns []string) error {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}

	if m.DateColumn == "" {
		return fmt.Errorf("date column is required")
	}
	if m.AmountColumn == "" {
		return fmt.Errorf("amount column is required")
	}

	required := map[string]string{
		"date":   m.DateColumn,
		"amount": m.AmountColumn,
	}
	if m.NameColumn != "" {
		required["name"] = m.NameColumn
	}
	if m.MemoColumn != "" {
		required["memo"] = m.MemoColumn
	}

	for field, col := range required {
		if !present[col] {
			return fmt.Errorf("%s column %q not found in source columns", field, col)
		}
	}
	return nil
}
