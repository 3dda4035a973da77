package export_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/export"
)

func sample() []*entity.Transaction {
	txn := entity.NewTransaction(uuid.New(), entity.TransactionTypeExpense, decimal.RequireFromString("19.9"), "food",
		time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC), valueobject.NewTags([]string{"home", "weekly"}), "groceries, mostly")
	return []*entity.Transaction{txn}
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	rows := sample()
	require.NoError(t, export.NewCSVWriter().Write(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(export.Headers, ","), lines[0])
	assert.Equal(t, rows[0].ID.String()+`,2025-03-04,expense,food,19.90,home;weekly,"groceries, mostly",false,none`, lines[1])
}

func TestCSVWriter_EmptyHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.NewCSVWriter().Write(&buf, nil))
	assert.Equal(t, strings.Join(export.Headers, ",")+"\n", buf.String())
}

func TestXLSXWriter(t *testing.T) {
	var buf bytes.Buffer
	rows := sample()
	w := export.NewXLSXWriter()
	require.NoError(t, w.Write(&buf, rows))
	assert.Equal(t, "xlsx", w.FileExtension())

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Transactions", "A1")
	require.NoError(t, err)
	assert.Equal(t, "id", header)

	category, err := f.GetCellValue("Transactions", "D2")
	require.NoError(t, err)
	assert.Equal(t, "food", category)

	tags, err := f.GetCellValue("Transactions", "F2")
	require.NoError(t, err)
	assert.Equal(t, "home;weekly", tags)
}
