package export

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

const sheetName = "Transactions"

// XLSXWriter encodes rows as a single-sheet workbook.
type XLSXWriter struct{}

var _ adapter.ReportWriter = XLSXWriter{}

// NewXLSXWriter creates an XLSXWriter.
func NewXLSXWriter() XLSXWriter {
	return XLSXWriter{}
}

// ContentType implements adapter.ReportWriter.
func (XLSXWriter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileExtension implements adapter.ReportWriter.
func (XLSXWriter) FileExtension() string { return "xlsx" }

// Write implements adapter.ReportWriter.
func (XLSXWriter) Write(w io.Writer, transactions []*entity.Transaction) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("Failed to close workbook", "error", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, h := range Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, t := range transactions {
		row := ToRows([]*entity.Transaction{t})[0]
		amount, _ := t.Amount.Round(2).Float64()
		values := []any{
			row.ID,
			row.Date,
			row.Type,
			row.Category,
			amount,
			row.Tags,
			row.Notes,
			row.IsRecurring,
			row.RecurrencePattern,
		}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
