package extract_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/common"
	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/extract"
)

func writeWorkbook(t *testing.T, rows ...[]any) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetList()[0]
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "invoices.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestSpreadsheetReader_HeaderKeyedRows(t *testing.T) {
	path := writeWorkbook(t,
		[]any{"Customer Name", "Total Amount", "Quantity"},
		[]any{"Alice", 100, 2},
		[]any{"Bob", 50.5, 1},
	)

	rows, err := extract.NewSpreadsheetReader(nil).Read(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Alice", rows[0]["Customer Name"])
	assert.Equal(t, "100", rows[0]["Total Amount"])
	assert.Equal(t, "50.5", rows[1]["Total Amount"])
	assert.Equal(t, "1", rows[1]["Quantity"])
}

func TestSpreadsheetReader_SkipsBlankRowsAndCells(t *testing.T) {
	path := writeWorkbook(t,
		[]any{"Customer Name", "", "Total Amount"},
		[]any{"Alice", "ignored-empty-header", 10},
		[]any{"", "", ""},
		[]any{"Bob", "", 20},
	)

	rows, err := extract.NewSpreadsheetReader(nil).Read(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	_, hasEmptyHeader := rows[0][""]
	assert.False(t, hasEmptyHeader, "cells under an empty header are dropped")
	assert.Equal(t, "Bob", rows[1]["Customer Name"])
}

func TestSpreadsheetReader_HeaderOnlySheetYieldsNoRows(t *testing.T) {
	path := writeWorkbook(t, []any{"Customer Name", "Total Amount"})

	rows, err := extract.NewSpreadsheetReader(nil).Read(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, rows, "empty datasets are the reconciler's call, not a read error")
}

func TestSpreadsheetReader_UnreadableFile(t *testing.T) {
	_, err := extract.NewSpreadsheetReader(nil).Read(context.Background(),
		filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
	assert.Equal(t, common.CodeExtractionFailure, common.CodeOf(err))
}
