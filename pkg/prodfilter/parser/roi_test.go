package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/models"
)

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "23.50%", FormatPercent(0.235))
	assert.Equal(t, "15.00%", FormatPercent(0.15))
	assert.Equal(t, "-5.00%", FormatPercent(-0.05))
}

func TestFormatROI(t *testing.T) {
	table := models.NewTable([]string{"Amazon Price", "ROI"}, []models.Row{
		{Cells: []models.Cell{models.Number(10), models.Number(0.15)}},
		{Cells: []models.Cell{models.Number(12), models.Number(0.235)}},
	})

	require.NoError(t, FormatROI(table))
	assert.Equal(t, models.Text("15.00%"), table.Rows[0].Cell(1))
	assert.Equal(t, models.Text("23.50%"), table.Rows[1].Cell(1))
	assert.Equal(t, models.Number(10), table.Rows[0].Cell(0))
}

func TestFormatROILeavesMixedColumn(t *testing.T) {
	table := models.NewTable([]string{"ROI"}, []models.Row{
		{Cells: []models.Cell{models.Number(0.15)}},
		{Cells: []models.Cell{models.Text("undefined")}},
	})
	before := table.Clone()

	assert.Error(t, FormatROI(table))
	assert.Equal(t, before, table)
}

func TestFormatROISkipsMissingCells(t *testing.T) {
	table := models.NewTable([]string{"Amazon Price", "ROI"}, []models.Row{
		{Cells: []models.Cell{models.Number(15), models.Number(0.25)}},
		{Cells: []models.Cell{models.Number(20), models.Missing()}},
	})

	require.NoError(t, FormatROI(table))
	assert.Equal(t, models.Text("25.00%"), table.Rows[0].Cell(1))
	assert.True(t, table.Rows[1].Cell(1).IsMissing())
}

func TestFormatROIMissingColumn(t *testing.T) {
	table := models.NewTable([]string{"Amazon Price"}, nil)
	assert.Error(t, FormatROI(table))
}
