// Package export renders report rows into downloadable files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// dateLayout is the date format written to every export.
const dateLayout = "2006-01-02"

// Row is the flat form of a transaction shared by all writers.
type Row struct {
	ID                string `csv:"id"`
	Date              string `csv:"date"`
	Type              string `csv:"type"`
	Category          string `csv:"category"`
	Amount            string `csv:"amount"`
	Tags              string `csv:"tags"`
	Notes             string `csv:"notes"`
	IsRecurring       bool   `csv:"is_recurring"`
	RecurrencePattern string `csv:"recurrence_pattern"`
}

// Headers lists the column titles in output order.
var Headers = []string{"id", "date", "type", "category", "amount", "tags", "notes", "is_recurring", "recurrence_pattern"}

// ToRows flattens transactions. Tags are joined with ";".
func ToRows(transactions []*entity.Transaction) []Row {
	rows := make([]Row, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, Row{
			ID:                t.ID.String(),
			Date:              t.Date.UTC().Format(dateLayout),
			Type:              string(t.Type),
			Category:          t.Category,
			Amount:            t.Amount.StringFixed(2),
			Tags:              strings.Join(t.Tags.Strings(), ";"),
			Notes:             t.Notes,
			IsRecurring:       t.IsRecurring,
			RecurrencePattern: string(t.RecurrencePattern),
		})
	}
	return rows
}

// CSVWriter encodes rows with gocsv.
type CSVWriter struct{}

var _ adapter.ReportWriter = CSVWriter{}

// NewCSVWriter creates a CSVWriter.
func NewCSVWriter() CSVWriter {
	return CSVWriter{}
}

// ContentType implements adapter.ReportWriter.
func (CSVWriter) ContentType() string { return "text/csv" }

// FileExtension implements adapter.ReportWriter.
func (CSVWriter) FileExtension() string { return "csv" }

// Write implements adapter.ReportWriter. An empty report still gets a header line.
func (CSVWriter) Write(w io.Writer, transactions []*entity.Transaction) error {
	rows := ToRows(transactions)
	cw := csv.NewWriter(w)

	if len(rows) == 0 {
		if err := cw.Write(Headers); err != nil {
			return fmt.Errorf("failed to write csv header: %w", err)
		}
		cw.Flush()
		return cw.Error()
	}

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
