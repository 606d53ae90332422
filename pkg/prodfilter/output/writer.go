// Package output writes filtered listings to workbooks and run summaries to JSON.
package output

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/models"
)

// ErrNoRows indicates there was nothing to write.
var ErrNoRows = eris.New("no rows to write")

// MatchHeader is the trailing, manually reviewed column of the images workbook.
const MatchHeader = "Product is a Match?"

const (
	filteredSuffix = "_filtered.xlsx"
	imagesSuffix   = "_images.xlsx"
)

// Written lists the files produced for one input.
type Written struct {
	// Main is the filtered workbook path.
	Main string
	// Images is the images workbook path, empty when not written.
	Images string
}

// Writer writes the main and images workbooks into Dir.
type Writer struct {
	// Dir is the output directory, created on first write.
	Dir string
	// SaveImages enables the images workbook.
	SaveImages bool

	log *zap.Logger
}

// NewWriter creates a Writer.
func NewWriter(dir string, saveImages bool, log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{Dir: dir, SaveImages: saveImages, log: log}
}

// OutputNames returns the main and images file names for an input file.
func OutputNames(input string) (main, images string) {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + filteredSuffix, stem + imagesSuffix
}

// Write saves t for the given input file. Nothing is written for an empty
// table.
func (w *Writer) Write(t *models.Table, input string) (Written, error) {
	var out Written
	if t.Len() == 0 {
		return out, ErrNoRows
	}

	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return out, eris.Wrapf(err, "failed to create output directory %s", w.Dir)
	}

	mainName, imagesName := OutputNames(input)

	w.log.Info("saving data to excel", zap.String("file", mainName))
	mainPath := filepath.Join(w.Dir, mainName)
	if err := writeMain(t, mainPath); err != nil {
		return out, eris.Wrapf(err, "failed to write %s", mainName)
	}
	out.Main = mainPath
	w.log.Info("filtered data saved", zap.String("file", mainName), zap.Int("rows", t.Len()))

	if !w.SaveImages {
		return out, nil
	}

	w.log.Info("saving images", zap.String("file", imagesName))
	imagesPath := filepath.Join(w.Dir, imagesName)
	if err := writeImages(t, imagesPath); err != nil {
		return out, eris.Wrapf(err, "failed to write %s", imagesName)
	}
	out.Images = imagesPath
	w.log.Info("images saved", zap.String("file", imagesName))

	return out, nil
}

func writeMain(t *models.Table, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := f.GetSheetName(0)
	st, err := newStyles(f)
	if err != nil {
		return err
	}

	if err := writeHeader(f, sheetName, t.Columns, st.header); err != nil {
		return err
	}

	for rowIdx, r := range t.Rows {
		for colIdx := range t.Columns {
			cell := r.Cell(colIdx)
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := writeCell(f, sheetName, cellName, cell); err != nil {
				return err
			}

			style := 0
			switch {
			case cell.Kind == models.KindHyperlink:
				style = st.hyperlink
			case strings.HasSuffix(cell.String(), "%"):
				style = st.roi
			}
			if style != 0 {
				if err := f.SetCellStyle(sheetName, cellName, cellName, style); err != nil {
					return err
				}
			}
		}
	}

	return f.SaveAs(path)
}

func writeImages(t *models.Table, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := f.GetSheetName(0)
	st, err := newStyles(f)
	if err != nil {
		return err
	}

	headers := append(t.ImageColumns(), MatchHeader)
	if err := writeHeader(f, sheetName, headers, st.header); err != nil {
		return err
	}

	for rowIdx, r := range t.Rows {
		col := 1
		for _, cell := range r.Cells {
			if cell.Kind != models.KindImage {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(col, rowIdx+2)
			if err != nil {
				return err
			}
			if err := writeCell(f, sheetName, cellName, cell); err != nil {
				return err
			}
			col++
		}
	}

	return f.SaveAs(path)
}

func writeHeader(f *excelize.File, sheetName string, headers []string, style int) error {
	if len(headers) == 0 {
		return nil
	}
	for i, h := range headers {
		cellName, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheetName, cellName, h); err != nil {
			return err
		}
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, "A1", last, style)
}

func writeCell(f *excelize.File, sheetName, cellName string, cell models.Cell) error {
	switch cell.Kind {
	case models.KindNumber:
		return f.SetCellFloat(sheetName, cellName, cell.Num, -1, 64)
	case models.KindText:
		return f.SetCellStr(sheetName, cellName, cell.Text)
	case models.KindImage, models.KindHyperlink, models.KindFormula:
		return f.SetCellFormula(sheetName, cellName, strings.TrimPrefix(cell.Text, "="))
	}
	return nil
}
