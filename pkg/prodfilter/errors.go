package prodfilter

import (
	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/config"
	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/filter"
	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/output"
	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/parser"
)

// Sentinel errors reported in FileResult.Err or by configuration loading.
var (
	// ErrSettings indicates the settings file could not be loaded. Fatal.
	ErrSettings = config.ErrSettings
	// ErrNoData indicates an input workbook is unreadable or lacks the price column.
	ErrNoData = parser.ErrNoData
	// ErrMissingColumn indicates a filter's target column is absent.
	ErrMissingColumn = filter.ErrMissingColumn
	// ErrNoBlacklist indicates the blacklist step produced no output.
	ErrNoBlacklist = filter.ErrNoBlacklist
	// ErrNoRows indicates no rows survived filtering.
	ErrNoRows = output.ErrNoRows
)
