// Package tabular decodes uploaded CSV and XLSX exports into a generic
// column-oriented table. It knows nothing about transactions; it only
// preserves the header row and the raw cell text of every data row.
package tabular

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Row maps a column name to the raw cell text of one source row.
type Row map[string]string

// Table is an ordered tabular source: the header columns in file order
// plus one Row per data row. Rows keep their source order; converters
// must not mutate a Table.
type Table struct {
	Columns []string
	Rows    []Row
}

// Decode picks a decoder by file extension and decodes data into a Table.
func Decode(filename string, data []byte) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return DecodeCSV(data)
	case ".xlsx", ".xls":
		return DecodeXLSX(data)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
}

// rowsToTable converts a header row plus raw record rows into a Table.
// Short records pad missing cells with the empty string; extra cells
// beyond the header are dropped.
func rowsToTable(records [][]string) *Table {
	if len(records) == 0 {
		return &Table{Columns: []string{}, Rows: []Row{}}
	}

	columns := make([]string, len(records[0]))
	for i, h := range records[0] {
		columns[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}
}
