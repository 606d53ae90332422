package filter

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/models"
)

// ExcludeBlacklisted drops rows whose title contains any blacklist entry,
// ignoring case. Entries are applied in order. With no blacklist or no
// table it returns ErrNoBlacklist and no table.
func ExcludeBlacklisted(t *models.Table, bl *models.Blacklist) (*models.Table, error) {
	if bl.Len() == 0 || t == nil {
		return nil, ErrNoBlacklist
	}

	idx, ok := t.Index(models.FieldTitle)
	if !ok {
		return nil, eris.Wrapf(ErrMissingColumn, "blacklist: %q", models.FieldTitle)
	}

	for _, word := range bl.Words() {
		needle := strings.ToLower(word)
		t = t.Filter(func(r models.Row) bool {
			return !strings.Contains(strings.ToLower(r.Cell(idx).String()), needle)
		})
	}
	return t, nil
}
