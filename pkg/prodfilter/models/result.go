package models

import "time"

// StageStatus is the outcome of a single filter stage.
type StageStatus string

const (
	// StageSkipped means the stage was disabled and passed its input on.
	StageSkipped StageStatus = "skipped"
	// StageApplied means the stage filtered its input.
	StageApplied StageStatus = "applied"
	// StageFailed means the stage errored and passed its input on.
	StageFailed StageStatus = "failed"
)

// StageResult records what one filter stage did to a table.
type StageResult struct {
	// Name is the stage name.
	Name string `json:"name"`
	// Status is the stage outcome.
	Status StageStatus `json:"status"`
	// RowsIn is the row count the stage received.
	RowsIn int `json:"rows_in"`
	// RowsOut is the row count the stage forwarded.
	RowsOut int `json:"rows_out"`
	// Err is the failure of a StageFailed stage.
	Err error `json:"-"`
	// Error is the message of Err, kept for serialisation.
	Error string `json:"error,omitempty"`
}

// FileResult records the processing of one input file.
type FileResult struct {
	// Input is the input file path.
	Input string `json:"input"`
	// RowsLoaded is the number of data rows read from the input.
	RowsLoaded int `json:"rows_loaded"`
	// ROIFormatted reports whether ROI fractions were rewritten as percentages.
	ROIFormatted bool `json:"roi_formatted"`
	// Stages holds one result per pipeline stage, in pipeline order.
	Stages []StageResult `json:"stages,omitempty"`
	// RowsKept is the number of rows written to the main workbook.
	RowsKept int `json:"rows_kept"`
	// MainOutput is the path of the filtered workbook, if written.
	MainOutput string `json:"main_output,omitempty"`
	// ImagesOutput is the path of the images workbook, if written.
	ImagesOutput string `json:"images_output,omitempty"`
	// Skipped explains why no output was written, if none was.
	Skipped string `json:"skipped,omitempty"`
	// Err is the error that ended processing early.
	Err error `json:"-"`
	// Error is the message of Err, kept for serialisation.
	Error string `json:"error,omitempty"`
}

// RunSummary records one run over a set of input files.
type RunSummary struct {
	// RunID identifies the run in logs and summaries.
	RunID string `json:"run_id"`
	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`
	// FinishedAt is when the run ended.
	FinishedAt time.Time `json:"finished_at"`
	// Config is the filter configuration used.
	Config FilterConfig `json:"config"`
	// Files holds one result per input file, in processing order.
	Files []FileResult `json:"files"`
}

// Written returns the number of files that produced a main workbook.
func (s RunSummary) Written() int {
	n := 0
	for _, f := range s.Files {
		if f.MainOutput != "" {
			n++
		}
	}
	return n
}
