package extract

import (
	"context"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/common"
)

// SpreadsheetReader reads the first sheet of an XLSX/XLS workbook into
// header-keyed rows. The header row is taken verbatim; cells with empty
// headers are ignored, and fully blank data rows are skipped.
type SpreadsheetReader struct {
	logger *slog.Logger
}

func NewSpreadsheetReader(logger *slog.Logger) *SpreadsheetReader {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpreadsheetReader{logger: logger}
}

func (r *SpreadsheetReader) Read(ctx context.Context, path string) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		r.logger.Error("extract.xlsx.open_failed", "path", path, "error", err)
		return nil, common.NewAppError(common.CodeExtractionFailure, "open workbook", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			r.logger.Warn("extract.xlsx.close_failed", "path", path, "error", cerr)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, common.NewAppError(common.CodeExtractionFailure, "workbook has no sheets", nil)
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, common.NewAppError(common.CodeExtractionFailure, "read rows", err)
	}
	if len(cells) == 0 {
		return nil, nil
	}

	headers := cells[0]
	rows := make([]Row, 0, len(cells)-1)
	for _, line := range cells[1:] {
		row := Row{}
		for i, v := range line {
			if i >= len(headers) {
				break
			}
			h := strings.TrimSpace(headers[i])
			if h == "" || v == "" {
				continue
			}
			row[h] = v
		}
		if len(row) == 0 {
			continue
		}
		rows = append(rows, row)
	}

	r.logger.Debug("extract.xlsx.ok", "path", path, "sheet", sheets[0], "rows", len(rows))
	return rows, nil
}
