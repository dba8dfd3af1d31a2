package ofx

import (
	"fmt"
	"strings"
	"time"

	"github.com/unimatrix-fi/ofx-bridge/internal/models"
	"github.com/unimatrix-fi/ofx-bridge/internal/tabular"
)

// Options are the caller-tunable knobs of one conversion.
type Options struct {
	// DateLayout is an explicit Go reference-time layout for the date
	// column. Empty means best-effort detection.
	DateLayout string `json:"dateLayout,omitempty"`

	// InvertAmount negates every parsed amount, for sources that report
	// charges as positive numbers.
	InvertAmount bool `json:"invertAmount,omitempty"`
}

// Result is a finished conversion: the document text plus the statistics
// the service records alongside it.
type Result struct {
	Document     string
	Transactions int
	Dropped      int
	Start        time.Time
	End          time.Time
}

// Convert runs the whole pipeline: validate the mapping, normalize every
// row, generate identifiers, assemble and render. refTime feeds DTSERVER
// and the empty-statement date range; callers pass time.Now() at the
// service boundary so the conversion itself stays reproducible.
//
// Rows whose date or amount fail to normalize are dropped silently; that
// is how footer and subtotal rows of spreadsheet exports are filtered
// out. The only error is a mapping that names columns the source does not
// have, reported before any output is produced. An empty or fully-dropped
// source still yields a structurally valid document.
func Convert(table *tabular.Table, mapping models.ColumnMapping, meta models.AccountMeta, opts Options, refTime time.Time) (Result, error) {
	if err := mapping.Validate(table.Columns); err != nil {
		return Result{}, fmt.Errorf("invalid column mapping: %w", err)
	}

	transactions := make([]models.Transaction, 0, len(table.Rows))
	dropped := 0

	for i, row := range table.Rows {
		date, ok := ParseDate(row[mapping.DateColumn], opts.DateLayout)
		if !ok {
			dropped++
			continue
		}
		amount, ok := ParseAmount(row[mapping.AmountColumn], opts.InvertAmount)
		if !ok {
			dropped++
			continue
		}

		memo := ""
		if mapping.MemoColumn != "" {
			memo = strings.TrimSpace(row[mapping.MemoColumn])
		}
		name := memo
		if mapping.NameColumn != "" {
			name = strings.TrimSpace(row[mapping.NameColumn])
		}

		transactions = append(transactions, models.Transaction{
			Date:        date,
			Amount:      amount,
			Name:        name,
			Memo:        memo,
			SourceIndex: i,
			FITID:       GenerateFITID(i, date, amount, memo),
		})
	}

	stmt := NewStatement(transactions, refTime)
	return Result{
		Document:     RenderDocument(stmt, meta, refTime),
		Transactions: len(stmt.Transactions),
		Dropped:      dropped,
		Start:        stmt.Start,
		End:          stmt.End,
	}, nil
}
