package output

import "github.com/xuri/excelize/v2"

// ROIFillColor is the fill applied to percentage cells.
const ROIFillColor = "91BF4D"

// HyperlinkColor is the font color of hyperlink cells.
const HyperlinkColor = "0563C1"

// styles holds the style ids registered on one workbook.
type styles struct {
	header    int
	hyperlink int
	roi       int
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error

	if s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	}); err != nil {
		return s, err
	}

	if s.hyperlink, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: HyperlinkColor, Underline: "single"},
	}); err != nil {
		return s, err
	}

	if s.roi, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{ROIFillColor}},
	}); err != nil {
		return s, err
	}

	return s, nil
}
