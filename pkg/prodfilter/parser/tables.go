package parser

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/models"
)

// ErrNoData indicates the workbook holds no usable listing data.
var ErrNoData = eris.New("no products found")

// RequiredField must be present for a workbook to be processed.
const RequiredField = models.FieldAmazonPrice

// LoadTable reads the first sheet of a workbook. Row 1 is the header; the
// table is as wide as the header.
func LoadTable(path string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(ErrNoData, "open %s: %v", path, err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, eris.Wrapf(ErrNoData, "read sheet %q: %v", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, eris.Wrapf(ErrNoData, "sheet %q is empty", sheetName)
	}

	columns := readHeader(rows[0])
	table := &models.Table{Columns: columns}
	if _, ok := table.Index(RequiredField); !ok {
		return nil, eris.Wrapf(ErrNoData, "missing %q column", RequiredField)
	}

	lastRow := maxRow(f, sheetName, len(rows))
	for rowNum := 2; rowNum <= lastRow; rowNum++ {
		var raw []string
		if rowNum-1 < len(rows) {
			raw = rows[rowNum-1]
		}

		cells := make([]models.Cell, len(columns))
		hasData := false
		for colIdx := range columns {
			value := ""
			if colIdx < len(raw) {
				value = raw[colIdx]
			}
			cell, err := readCell(f, sheetName, colIdx+1, rowNum, value)
			if err != nil {
				return nil, eris.Wrapf(err, "read row %d", rowNum)
			}
			if !cell.IsMissing() {
				hasData = true
			}
			cells[colIdx] = cell
		}

		if hasData {
			table.Rows = append(table.Rows, models.Row{Cells: cells})
			continue
		}
		// Past the value rows only formulas can hold data, and they are
		// contiguous. A blank row there ends the sheet even when the
		// recorded dimension runs further.
		if rowNum > len(rows) {
			break
		}
	}

	return table, nil
}

// readHeader trims header names and drops trailing empty header cells.
func readHeader(row []string) []string {
	width := findHeaderWidth(row)
	columns := make([]string, width)
	for i := 0; i < width; i++ {
		columns[i] = strings.TrimSpace(row[i])
	}
	return columns
}

// findHeaderWidth returns one past the last non-empty header cell.
func findHeaderWidth(row []string) int {
	width := 0
	for colIdx, cell := range row {
		if strings.TrimSpace(cell) != "" {
			width = colIdx + 1
		}
	}
	return width
}

// maxRow returns the last used row. GetRows trims rows whose cells only
// hold formulas without cached values, so the sheet dimension is consulted
// as well.
func maxRow(f *excelize.File, sheetName string, fromRows int) int {
	last := fromRows
	dim, err := f.GetSheetDimension(sheetName)
	if err != nil || dim == "" {
		return last
	}
	parts := strings.Split(dim, ":")
	_, row, err := excelize.CellNameToCoordinates(parts[len(parts)-1])
	if err == nil && row > last {
		last = row
	}
	return last
}
