// Package parser loads listing workbooks into typed tables.
package parser

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/models"
)

// readCell classifies one cell. Formulas win over cached values so that
// image and hyperlink references survive even without a cached result.
func readCell(f *excelize.File, sheetName string, col, row int, raw string) (models.Cell, error) {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.Missing(), err
	}

	formula, err := f.GetCellFormula(sheetName, cellName)
	if err != nil {
		return models.Missing(), err
	}
	if formula != "" {
		return models.Formula(formula), nil
	}

	if raw == "" {
		return models.Missing(), nil
	}

	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return models.Missing(), err
	}
	return parseValue(raw, cellType), nil
}

// parseValue classifies a raw cell value using its stored type. Strings
// stay text even when they look numeric; stages coerce them as needed.
// Text holding a formula expression such as "=IMAGE(...)" is read as that
// formula.
func parseValue(s string, cellType excelize.CellType) models.Cell {
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		if expr := strings.TrimSpace(s); len(expr) > 1 && expr[0] == '=' {
			return models.Formula(expr)
		}
		return models.Text(s)
	case excelize.CellTypeBool, excelize.CellTypeError:
		return models.Text(s)
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return models.Number(v)
	}
	return models.Text(s)
}
