package filter

import (
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/models"
)

// ErrMissingColumn indicates a stage's target column is absent.
var ErrMissingColumn = eris.New("column not found")

// ErrNoBlacklist indicates the blacklist step produced no output because
// there was no blacklist or no table. It is distinct from an empty table.
var ErrNoBlacklist = eris.New("no blacklist output")

// StageError represents a failure inside a filter stage.
type StageError struct {
	Stage string
	Field models.Field
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("filter stage %q (%s): %v", e.Stage, e.Field, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage string, field models.Field, err error) *StageError {
	return &StageError{
		Stage: stage,
		Field: field,
		Err:   err,
	}
}
