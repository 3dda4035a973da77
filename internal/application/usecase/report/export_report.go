package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// ExportReportInput represents the input for exporting report rows.
type ExportReportInput struct {
	Filter Filter
	Format string // key of a registered writer, e.g. "csv"
}

// ExportReportOutput is a ready-to-download file.
type ExportReportOutput struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExportReportUseCase renders the financial report rows with a ReportWriter.
type ExportReportUseCase struct {
	report  *FinancialReportUseCase
	writers map[string]adapter.ReportWriter
}

// NewExportReportUseCase creates a new ExportReportUseCase instance.
// writers is keyed by lower-case format name.
func NewExportReportUseCase(transactionRepo adapter.TransactionRepository, writers map[string]adapter.ReportWriter) *ExportReportUseCase {
	return &ExportReportUseCase{
		report:  NewFinancialReportUseCase(transactionRepo),
		writers: writers,
	}
}

// Execute performs the export.
func (uc *ExportReportUseCase) Execute(ctx context.Context, input ExportReportInput) (*ExportReportOutput, error) {
	format := strings.ToLower(strings.TrimSpace(input.Format))
	writer, ok := uc.writers[format]
	if !ok {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeUnsupportedExportFormat,
			fmt.Sprintf("unsupported export format %q", input.Format),
			domainerror.ErrUnsupportedExportFormat,
		)
	}

	report, err := uc.report.Execute(ctx, FinancialReportInput{Filter: input.Filter})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := writer.Write(&buf, report.Rows()); err != nil {
		return nil, fmt.Errorf("failed to write %s export: %w", format, err)
	}

	return &ExportReportOutput{
		FileName:    fmt.Sprintf("report-%s.%s", time.Now().UTC().Format("20060102-150405"), writer.FileExtension()),
		ContentType: writer.ContentType(),
		Content:     buf.Bytes(),
	}, nil
}
