package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// DecodeCSV decodes CSV data. The first record is the header row; every
// later record becomes one Row. Records may have ragged lengths.
func DecodeCSV(data []byte) (*Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	return rowsToTable(records), nil
}
