package models

import (
	"regexp"
	"strings"
)

// Field is a named column of the fixed listing schema.
type Field string

const (
	FieldAmazonPrice  Field = "Amazon Price"
	FieldROI          Field = "ROI"
	FieldRating       Field = "Rating"
	FieldReviewCount  Field = "ReviewCount"
	FieldOfferCount   Field = "offerCount"
	FieldAvailability Field = "offers/0/availability"
	FieldTitle        Field = "Amazon Product Title"
)

var imageHeaderPattern = regexp.MustCompile(`(?i)image`)

// IsImageHeader reports whether a column header names an image column.
func IsImageHeader(header string) bool {
	return imageHeaderPattern.MatchString(header)
}

// Row is one listing, with cells aligned to the owning table's columns.
type Row struct {
	// Cells holds one cell per table column.
	Cells []Cell `json:"cells"`
}

// Cell returns the cell at column index i, or a missing cell when the row
// is shorter than i.
func (r Row) Cell(i int) Cell {
	if i < 0 || i >= len(r.Cells) {
		return Missing()
	}
	return r.Cells[i]
}

// Table is an ordered set of rows sharing one column schema.
type Table struct {
	// Columns are the header names in sheet order.
	Columns []string `json:"columns"`
	// Rows are the data rows in sheet order.
	Rows []Row `json:"rows"`
}

// NewTable returns a table with the given columns and rows. Rows are
// padded or truncated to the column count.
func NewTable(columns []string, rows []Row) *Table {
	t := &Table{Columns: columns, Rows: make([]Row, 0, len(rows))}
	for _, r := range rows {
		t.Rows = append(t.Rows, t.align(r))
	}
	return t
}

func (t *Table) align(r Row) Row {
	cells := make([]Cell, len(t.Columns))
	copy(cells, r.Cells)
	return Row{Cells: cells}
}

// Len returns the number of rows, treating a nil table as empty.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Index returns the column index of a named field.
func (t *Table) Index(f Field) (int, bool) {
	return t.ColumnIndex(string(f))
}

// ColumnIndex returns the index of the first column named name.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}
	return -1, false
}

// ImageColumns returns the headers matching "image", in column order.
func (t *Table) ImageColumns() []string {
	var headers []string
	for _, c := range t.Columns {
		if IsImageHeader(c) {
			headers = append(headers, c)
		}
	}
	return headers
}

// Filter returns a table with the same columns holding only the rows for
// which keep returns true. Rows are shared, not copied.
func (t *Table) Filter(keep func(Row) bool) *Table {
	out := &Table{Columns: t.Columns, Rows: make([]Row, 0, len(t.Rows))}
	for _, r := range t.Rows {
		if keep(r) {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]Row, len(t.Rows)),
	}
	for i, r := range t.Rows {
		out.Rows[i] = Row{Cells: append([]Cell(nil), r.Cells...)}
	}
	return out
}

// Blacklist is an ordered, case-insensitively deduplicated list of title
// substrings that exclude a listing.
type Blacklist struct {
	words []string
}

// NewBlacklist builds a blacklist, trimming entries and dropping blanks and
// case-insensitive duplicates while keeping first-seen order.
func NewBlacklist(words []string) *Blacklist {
	seen := make(map[string]bool)
	b := &Blacklist{}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		key := strings.ToLower(w)
		if seen[key] {
			continue
		}
		seen[key] = true
		b.words = append(b.words, w)
	}
	return b
}

// Words returns the entries in order.
func (b *Blacklist) Words() []string {
	if b == nil {
		return nil
	}
	return append([]string(nil), b.words...)
}

// Len returns the number of entries.
func (b *Blacklist) Len() int {
	if b == nil {
		return 0
	}
	return len(b.words)
}
