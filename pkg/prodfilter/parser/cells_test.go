package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/models"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		cellType excelize.CellType
		expected models.Cell
	}{
		{"123", excelize.CellTypeUnset, models.Number(123)},
		{"0.235", excelize.CellTypeNumber, models.Number(0.235)},
		{"-100", excelize.CellTypeUnset, models.Number(-100)},
		{"15", excelize.CellTypeSharedString, models.Text("15")},
		{"undefined", excelize.CellTypeUnset, models.Text("undefined")},
		{"undefined", excelize.CellTypeSharedString, models.Text("undefined")},
		{"#N/A", excelize.CellTypeError, models.Text("#N/A")},
		{"TRUE", excelize.CellTypeBool, models.Text("TRUE")},
		{"", excelize.CellTypeUnset, models.Missing()},
		{`=IMAGE("http://img/1.jpg")`, excelize.CellTypeSharedString, models.Cell{Kind: models.KindImage, Text: `=IMAGE("http://img/1.jpg")`}},
		{`=hyperlink("http://a")`, excelize.CellTypeInlineString, models.Cell{Kind: models.KindHyperlink, Text: `=hyperlink("http://a")`}},
		{"=SUM(A1:A2)", excelize.CellTypeSharedString, models.Cell{Kind: models.KindFormula, Text: "=SUM(A1:A2)"}},
		{"=", excelize.CellTypeSharedString, models.Text("=")},
	}

	for _, tt := range tests {
		result := parseValue(tt.input, tt.cellType)
		assert.Equal(t, tt.expected, result, "parseValue(%q, %v)", tt.input, tt.cellType)
	}
}
