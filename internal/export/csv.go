// Package export renders a user's full record set into downloadable files.
package export

import (
	"bytes"
	"encoding/csv"

	"github.com/pocketledger/backend/internal/ledger"
)

// File names for the download endpoints.
const (
	CSVFileName = "expenses_incomes.csv"
	PDFFileName = "expenses_incomes.pdf"
)

// Columns is the shared column order of both export formats.
var Columns = []string{"Date", "Time", "Category", "Amount", "Description"}

// CSV renders expenses and incomes as a single text blob with two labeled
// sections. Rows are quote-escaped by the writer, so descriptions containing
// commas or quotes survive a round trip.
func CSV(expenses, incomes []ledger.Record) []byte {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	writeSection(writer, "Expenses", expenses)
	_ = writer.Write([]string{})
	writeSection(writer, "Income", incomes)

	writer.Flush()
	return buf.Bytes()
}

func writeSection(writer *csv.Writer, title string, records []ledger.Record) {
	_ = writer.Write([]string{title})
	_ = writer.Write(Columns)

	for _, record := range records {
		_ = writer.Write([]string{
			record.Date,
			record.Time,
			record.Category,
			record.Amount.String(),
			record.Description,
		})
	}
}
