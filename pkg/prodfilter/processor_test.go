package prodfilter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/models"
	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/output"
)

var listingHeader = []interface{}{
	"Amazon Price", "ROI", "Rating", "ReviewCount", "offerCount",
	"offers/0/availability", "Amazon Product Title", "Image 1", "Image 2", "Link",
}

// writeWorkbook saves rows to dir/name. Strings starting with "=" are
// written as formulas and nil values are left empty.
func writeWorkbook(t *testing.T, dir, name string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := f.GetSheetName(0)
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			if value == nil {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			require.NoError(t, err)
			if s, ok := value.(string); ok && len(s) > 1 && s[0] == '=' {
				require.NoError(t, f.SetCellFormula(sheetName, cellName, s[1:]))
				continue
			}
			require.NoError(t, f.SetCellValue(sheetName, cellName, value))
		}
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func listingRows() [][]interface{} {
	return [][]interface{}{
		listingHeader,
		{15, 0.25, 4.5, 120, 3, "InStock", "Blue Gadget", `=IMAGE("http://img/1.jpg")`, `=IMAGE("http://img/2.jpg")`, `=HYPERLINK("http://a","a")`},
		{5, 0.30, 4.9, 300, 5, "InStock", "Cheap Gadget"},
		{20, 0.05, 4.2, 80, 2, "InStock", "Low Margin"},
		{25, 0.40, 4.8, 50, 2, "InStock", "Blue Widget Pro"},
		{"undefined", 0.50, 4.8, 50, 2, "InStock", "Unknown Price"},
	}
}

func float(v float64) *float64 { return &v }
func integer(v int) *int       { return &v }

func testConfig() models.FilterConfig {
	return models.FilterConfig{
		MinAmazonPrice: float(10),
		MinROI:         float(10),
		MinRating:      float(4),
		MinReviewCount: integer(10),
		MinOfferCount:  integer(1),
		Availability:   "In",
		SaveImageFiles: true,
	}
}

func newTestProcessor(outDir string, cfg models.FilterConfig, words ...string) *Processor {
	return NewProcessor(Options{
		Config:    cfg,
		Blacklist: models.NewBlacklist(words),
		OutputDir: outDir,
	})
}

func TestProcessFile(t *testing.T) {
	inDir, outDir := t.TempDir(), t.TempDir()
	input := writeWorkbook(t, inDir, "listings.xlsx", listingRows())

	res := newTestProcessor(outDir, testConfig(), "widget").ProcessFile(input)

	require.NoError(t, res.Err)
	assert.Empty(t, res.Skipped)
	assert.Equal(t, 5, res.RowsLoaded)
	assert.True(t, res.ROIFormatted)
	assert.Len(t, res.Stages, 6)
	assert.Equal(t, 1, res.RowsKept)
	assert.Equal(t, filepath.Join(outDir, "listings_filtered.xlsx"), res.MainOutput)
	assert.Equal(t, filepath.Join(outDir, "listings_images.xlsx"), res.ImagesOutput)

	f, err := excelize.OpenFile(res.MainOutput)
	require.NoError(t, err)
	defer f.Close()
	sheet := f.GetSheetName(0)

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	header := make([]string, len(listingHeader))
	for i, h := range listingHeader {
		header[i] = h.(string)
	}
	assert.Equal(t, header, rows[0])
	assert.Equal(t, "15", rows[1][0])
	assert.Equal(t, "25.00%", rows[1][1])
	assert.Equal(t, "Blue Gadget", rows[1][6])

	img, err := excelize.OpenFile(res.ImagesOutput)
	require.NoError(t, err)
	defer img.Close()
	imgSheet := img.GetSheetName(0)

	imgRows, err := img.GetRows(imgSheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Image 1", "Image 2", output.MatchHeader}, imgRows[0])
	formula, err := img.GetCellFormula(imgSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, `IMAGE("http://img/2.jpg")`, formula)
}

func TestProcessFileWithoutImages(t *testing.T) {
	inDir, outDir := t.TempDir(), t.TempDir()
	input := writeWorkbook(t, inDir, "listings.xlsx", listingRows())
	cfg := testConfig()
	cfg.SaveImageFiles = false

	res := newTestProcessor(outDir, cfg, "widget").ProcessFile(input)

	assert.NotEmpty(t, res.MainOutput)
	assert.Empty(t, res.ImagesOutput)
	_, err := os.Stat(filepath.Join(outDir, "listings_images.xlsx"))
	assert.True(t, os.IsNotExist(err))
}

func TestProcessFileNoSurvivors(t *testing.T) {
	inDir, outDir := t.TempDir(), t.TempDir()
	input := writeWorkbook(t, inDir, "listings.xlsx", listingRows())
	cfg := testConfig()
	cfg.MinAmazonPrice = float(1000)

	res := newTestProcessor(outDir, cfg, "widget").ProcessFile(input)

	assert.Equal(t, SkipNoRows, res.Skipped)
	assert.Empty(t, res.MainOutput)
	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProcessFileEmptyBlacklist(t *testing.T) {
	inDir, outDir := t.TempDir(), t.TempDir()
	input := writeWorkbook(t, inDir, "listings.xlsx", listingRows())

	res := newTestProcessor(outDir, testConfig()).ProcessFile(input)

	assert.Equal(t, SkipNoBlacklist, res.Skipped)
	assert.NoError(t, res.Err)
	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProcessFileBlankROI(t *testing.T) {
	inDir, outDir := t.TempDir(), t.TempDir()
	input := writeWorkbook(t, inDir, "listings.xlsx", [][]interface{}{
		{"Amazon Price", "ROI", "Amazon Product Title"},
		{15, 0.25, "Blue Gadget"},
		{20, nil, "No ROI"},
	})
	cfg := models.FilterConfig{MinROI: float(10)}

	res := newTestProcessor(outDir, cfg, "widget").ProcessFile(input)

	require.NoError(t, res.Err)
	assert.Empty(t, res.Skipped)
	assert.True(t, res.ROIFormatted)
	assert.Equal(t, models.StageApplied, res.Stages[1].Status)
	assert.Equal(t, 1, res.RowsKept)

	f, err := excelize.OpenFile(res.MainOutput)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "25.00%", rows[1][1])
	assert.Equal(t, "Blue Gadget", rows[1][2])
}

func TestProcessFileNoPriceColumn(t *testing.T) {
	inDir, outDir := t.TempDir(), t.TempDir()
	input := writeWorkbook(t, inDir, "other.xlsx", [][]interface{}{
		{"Title", "ROI"},
		{"Blue Gadget", 0.2},
	})

	res := newTestProcessor(outDir, testConfig(), "widget").ProcessFile(input)

	assert.Equal(t, SkipNoData, res.Skipped)
	assert.True(t, eris.Is(res.Err, ErrNoData))
	assert.NotEmpty(t, res.Error)
}

func TestProcessFileStageFailureContinues(t *testing.T) {
	inDir, outDir := t.TempDir(), t.TempDir()
	input := writeWorkbook(t, inDir, "listings.xlsx", [][]interface{}{
		{"Amazon Price", "Amazon Product Title"},
		{15, "Blue Gadget"},
		{5, "Cheap Gadget"},
	})
	cfg := models.FilterConfig{MinAmazonPrice: float(10), MinRating: float(4)}

	res := newTestProcessor(outDir, cfg, "widget").ProcessFile(input)

	require.NoError(t, res.Err)
	assert.False(t, res.ROIFormatted)
	assert.Equal(t, models.StageFailed, res.Stages[2].Status)
	assert.Equal(t, 1, res.RowsKept)
	assert.NotEmpty(t, res.MainOutput)
}

func TestRun(t *testing.T) {
	inDir, outDir := t.TempDir(), t.TempDir()
	writeWorkbook(t, inDir, "b.xlsx", listingRows())
	writeWorkbook(t, inDir, "a.xlsx", [][]interface{}{{"Title"}, {"x"}})

	files, err := FindInputFiles(inDir)
	require.NoError(t, err)

	summary := newTestProcessor(outDir, testConfig(), "widget").Run(context.Background(), files)

	assert.NotEmpty(t, summary.RunID)
	require.Len(t, summary.Files, 2)
	assert.Equal(t, SkipNoData, summary.Files[0].Skipped)
	assert.NotEmpty(t, summary.Files[1].MainOutput)
	assert.Equal(t, 1, summary.Written())
	assert.False(t, summary.FinishedAt.Before(summary.StartedAt))
}

func TestRunCancelled(t *testing.T) {
	inDir, outDir := t.TempDir(), t.TempDir()
	input := writeWorkbook(t, inDir, "a.xlsx", listingRows())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary := newTestProcessor(outDir, testConfig(), "widget").Run(ctx, []string{input})
	assert.Empty(t, summary.Files)
}
