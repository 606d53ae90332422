package parser

import (
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/models"
)

// FormatROI rewrites ROI fractions as percentage text (0.235 becomes
// "23.50%"). Missing cells stay missing. The column is rewritten only when
// every other ROI cell is numeric; otherwise it is left unchanged and an
// error describes why.
func FormatROI(t *models.Table) error {
	idx, ok := t.Index(models.FieldROI)
	if !ok {
		return eris.Errorf("no %q column", models.FieldROI)
	}

	for i, r := range t.Rows {
		if c := r.Cell(idx); c.Kind != models.KindNumber && !c.IsMissing() {
			return eris.Errorf("row %d: %s value %q is not a fraction", i+1, models.FieldROI, c.String())
		}
	}

	for i := range t.Rows {
		c := t.Rows[i].Cell(idx)
		if c.IsMissing() {
			continue
		}
		t.Rows[i].Cells[idx] = models.Text(FormatPercent(c.Num))
	}
	return nil
}

// FormatPercent formats a fraction as a percentage with two decimals.
func FormatPercent(fraction float64) string {
	return fmt.Sprintf("%.2f%%", fraction*100)
}
