// Package models defines data structures for product listing filtering.
package models

import (
	"strconv"
	"strings"
)

// CellKind identifies which variant a Cell holds.
type CellKind int

const (
	// KindMissing is an empty or absent cell.
	KindMissing CellKind = iota
	// KindNumber is a numeric cell.
	KindNumber
	// KindText is a plain text cell.
	KindText
	// KindImage is a formula cell referencing an image (=IMAGE(...)).
	KindImage
	// KindHyperlink is a formula cell referencing a link (=HYPERLINK(...)).
	KindHyperlink
	// KindFormula is any other formula cell.
	KindFormula
)

func (k CellKind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindImage:
		return "image"
	case KindHyperlink:
		return "hyperlink"
	case KindFormula:
		return "formula"
	}
	return "unknown"
}

// Cell is a single spreadsheet value, classified once at load time.
type Cell struct {
	// Kind is the variant held by the cell.
	Kind CellKind `json:"kind"`
	// Num is the value of a KindNumber cell.
	Num float64 `json:"num,omitempty"`
	// Text is the value of a KindText cell, or the formula (with its
	// leading "=") of the formula kinds.
	Text string `json:"text,omitempty"`
}

// Missing returns an empty cell.
func Missing() Cell { return Cell{Kind: KindMissing} }

// Number returns a numeric cell.
func Number(v float64) Cell { return Cell{Kind: KindNumber, Num: v} }

// Text returns a text cell. Empty text is treated as missing.
func Text(s string) Cell {
	if s == "" {
		return Missing()
	}
	return Cell{Kind: KindText, Text: s}
}

// Formula returns a formula cell, classified by its function prefix.
// The leading "=" is added when absent.
func Formula(expr string) Cell {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Missing()
	}
	if !strings.HasPrefix(expr, "=") {
		expr = "=" + expr
	}
	upper := strings.ToUpper(expr)
	switch {
	case strings.HasPrefix(upper, "=IM"):
		return Cell{Kind: KindImage, Text: expr}
	case strings.HasPrefix(upper, "=HY"):
		return Cell{Kind: KindHyperlink, Text: expr}
	}
	return Cell{Kind: KindFormula, Text: expr}
}

// IsMissing reports whether the cell holds no value.
func (c Cell) IsMissing() bool { return c.Kind == KindMissing }

// IsFormula reports whether the cell holds any formula kind.
func (c Cell) IsFormula() bool {
	return c.Kind == KindImage || c.Kind == KindHyperlink || c.Kind == KindFormula
}

// IsUndefined reports whether a text cell carries an "undefined" marker: a
// value built only from the letters of "undefined". Upstream exporters
// write these where a value could not be scraped.
func (c Cell) IsUndefined() bool {
	if c.Kind != KindText {
		return false
	}
	return strings.Trim(c.Text, "undefin") == ""
}

// Float coerces the cell to a number. Text is parsed after trimming.
// Missing, undefined and formula cells never coerce.
func (c Cell) Float() (float64, bool) {
	switch c.Kind {
	case KindNumber:
		return c.Num, true
	case KindText:
		if c.IsUndefined() {
			return 0, false
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

// Percent coerces the cell like Float but strips "%" signs from text first.
func (c Cell) Percent() (float64, bool) {
	if c.Kind == KindText && !c.IsUndefined() {
		return Text(strings.ReplaceAll(c.Text, "%", "")).Float()
	}
	return c.Float()
}

// String returns the display form of the cell.
func (c Cell) String() string {
	switch c.Kind {
	case KindMissing:
		return ""
	case KindNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	}
	return c.Text
}
