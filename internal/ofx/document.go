package ofx

import (
	"sort"
	"strings"
	"time"

	"github.com/unimatrix-fi/ofx-bridge/internal/models"
)

// Statement is an assembled document before rendering: the transactions
// in posting order plus the computed date range.
type Statement struct {
	Transactions []models.Transaction
	Start        time.Time
	End          time.Time
}

// NewStatement orders transactions ascending by date and computes the
// range bounds. The sort is stable so rows sharing a date keep their
// source order and reruns produce identical documents. An empty set
// degenerates to Start == End == refTime.
func NewStatement(transactions []models.Transaction, refTime time.Time) Statement {
	sorted := make([]models.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	start, end := refTime, refTime
	if len(sorted) > 0 {
		start = sorted[0].Date
		end = sorted[len(sorted)-1].Date
	}

	return Statement{Transactions: sorted, Start: start, End: end}
}

// RenderDocument renders the statement as OFX 1.02 SGML. The format is
// line-oriented, one tag per line with fixed indentation; consumers parse
// it by tag prefix, so the structure here must stay byte-stable for
// identical logical input. Blank metadata fields render as empty tag
// values rather than failing.
func RenderDocument(stmt Statement, meta models.AccountMeta, refTime time.Time) string {
	lines := []string{
		"OFXHEADER:100",
		"DATA:OFXSGML",
		"VERSION:102",
		"SECURITY:NONE",
		"ENCODING:USASCII",
		"CHARSET:1252",
		"COMPRESSION:NONE",
		"OLDFILEUID:NONE",
		"NEWFILEUID:NONE",
		"",
		"<OFX>",
		"  <SIGNONMSGSRSV1>",
		"    <SONRS>",
		"      <STATUS>",
		"        <CODE>0",
		"        <SEVERITY>INFO",
		"      </STATUS>",
		"      <DTSERVER>" + refTime.Format("20060102150405"),
		"      <LANGUAGE>ENG",
		"      <FI>",
		"        <ORG>" + meta.Org,
		"        <FID>" + meta.FID,
		"      </FI>",
		"    </SONRS>",
		"  </SIGNONMSGSRSV1>",
		"  <BANKMSGSRSV1>",
		"    <STMTTRNRS>",
		"      <TRNUID>1",
		"      <STATUS>",
		"        <CODE>0",
		"        <SEVERITY>INFO",
		"      </STATUS>",
		"      <STMTRS>",
		"        <CURDEF>" + meta.Currency,
		"        <BANKACCTFROM>",
		"          <BANKID>" + meta.BankID,
		"          <ACCTID>" + meta.AccountID,
		"          <ACCTTYPE>" + string(meta.Type),
		"        </BANKACCTFROM>",
		"        <BANKTRANLIST>",
		"          <DTSTART>" + stmt.Start.Format("20060102"),
		"          <DTEND>" + stmt.End.Format("20060102"),
	}

	for _, t := range stmt.Transactions {
		name := t.Name
		if name == "" {
			name = "Transaction"
		}
		lines = append(lines,
			"          <STMTTRN>",
			"            <TRNTYPE>"+t.Type(),
			"            <DTPOSTED>"+t.Date.Format("20060102"),
			"            <TRNAMT>"+t.Amount.StringFixed(2),
			"            <FITID>"+t.FITID,
			"            <NAME>"+name,
			"            <MEMO>"+t.Memo,
			"          </STMTTRN>",
		)
	}

	lines = append(lines,
		"        </BANKTRANLIST>",
		"        <LEDGERBAL>",
		"          <BALAMT>0.00",
		"          <DTASOF>"+stmt.End.Format("20060102"),
		"        </LEDGERBAL>",
		"      </STMTRS>",
		"    </STMTTRNRS>",
		"  </BANKMSGSRSV1>",
		"</OFX>",
	)

	return strings.Join(lines, "\n")
}
