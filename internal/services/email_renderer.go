package services

import (
	"fmt"
	"strings"

	"github.com/unimatrix-fi/ofx-bridge/internal/models"
)

// RenderStatementBody renders the HTML body accompanying a delivered OFX
// statement.
func RenderStatementBody(filename string, transactions, dropped int, start, end string) string {
	droppedNote := ""
	if dropped > 0 {
		droppedNote = fmt.Sprintf(`
			<p style="color: #a15c00;">%d source row(s) could not be parsed and were left out of the statement.</p>
		`, dropped)
	}

	return fmt.Sprintf(`
		<html>
		<body style="font-family: 'Segoe UI', sans-serif; color: #333; line-height: 1.6; background-color: #f4f4f4; margin: 0; padding: 20px;">
			<div style="max-width: 600px; margin: 0 auto; background: white; border-radius: 8px; overflow: hidden; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">
				<div style="background-color: #0b6e4f; padding: 20px; text-align: center; color: white;">
					<h2 style="margin: 0;">Statement Ready</h2>
				</div>
				<div style="padding: 20px;">
					<p>Your OFX statement <b>%s</b> is attached.</p>
					<p>Transactions: <b>%d</b><br>Period: <b>%s</b> to <b>%s</b></p>
					%s
				</div>
			</div>
		</body>
		</html>
	`, filename, transactions, start, end, droppedNote)
}

// RenderDigestBody renders the nightly digest of a month's conversions.
func RenderDigestBody(month string, conversions []models.Conversion) string {
	var rows strings.Builder
	total := 0
	for _, c := range conversions {
		total += c.Transactions
		rows.WriteString(fmt.Sprintf(`
			<tr>
				<td style="padding: 6px 10px; border-bottom: 1px solid #eee;">%s</td>
				<td style="padding: 6px 10px; border-bottom: 1px solid #eee;">%s &rarr; %s</td>
				<td style="padding: 6px 10px; border-bottom: 1px solid #eee; text-align: right;">%d</td>
				<td style="padding: 6px 10px; border-bottom: 1px solid #eee; text-align: right;">%d</td>
			</tr>
		`, c.CreatedAt, c.Start, c.End, c.Transactions, c.Dropped))
	}

	return fmt.Sprintf(`
		<html>
		<body style="font-family: 'Segoe UI', sans-serif; color: #333; line-height: 1.6; background-color: #f4f4f4; margin: 0; padding: 20px;">
			<div style="max-width: 600px; margin: 0 auto; background: white; border-radius: 8px; overflow: hidden; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">
				<div style="background-color: #2b2d42; padding: 20px; text-align: center; color: white;">
					<h2 style="margin: 0;">OFX Bridge Digest &mdash; %s</h2>
				</div>
				<div style="padding: 20px;">
					<p><b>%d</b> conversion(s), <b>%d</b> transaction(s) exported this month.</p>
					<table style="width: 100%%; border-collapse: collapse;">
						<tr>
							<th style="text-align: left; padding: 6px 10px;">When</th>
							<th style="text-align: left; padding: 6px 10px;">Period</th>
							<th style="text-align: right; padding: 6px 10px;">Txns</th>
							<th style="text-align: right; padding: 6px 10px;">Dropped</th>
						</tr>
						%s
					</table>
				</div>
			</div>
		</body>
		</html>
	`, month, len(conversions), total, rows.String())
}
