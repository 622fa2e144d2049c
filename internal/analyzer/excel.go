package analyzer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExtractRows reads the first sheet of an Excel workbook into string rows,
// so a spreadsheet statement can be submitted via AnalyzeRows instead of a
// raw file upload.
func ExtractRows(r io.Reader) ([][]string, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	return rows, nil
}
