package tabular

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// DecodeXLSX decodes the first sheet of an XLSX workbook. Cells are read
// as their formatted text, so dates and numbers arrive the way the
// spreadsheet displays them.
func DecodeXLSX(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	records, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	return rowsToTable(records), nil
}
