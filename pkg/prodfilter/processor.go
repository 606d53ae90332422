package prodfilter

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/filter"
	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/models"
	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/output"
	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/parser"
)

// Skip reasons recorded in FileResult.Skipped.
const (
	SkipNoData       = "no products found"
	SkipNoBlacklist  = "blacklist is empty"
	SkipNoRows       = "no products remaining"
	SkipBlacklistErr = "blacklist filtering failed"
	SkipWriteErr     = "writing output failed"
)

// Processor filters workbooks one at a time.
type Processor struct {
	cfg       models.FilterConfig
	blacklist *models.Blacklist
	pipeline  *filter.Pipeline
	writer    *output.Writer
	log       *zap.Logger
}

// NewProcessor creates a Processor.
func NewProcessor(opts Options) *Processor {
	log := opts.logger()
	return &Processor{
		cfg:       opts.Config,
		blacklist: opts.Blacklist,
		pipeline:  filter.New(opts.Config, log.Named("pipeline")),
		writer:    output.NewWriter(opts.OutputDir, opts.Config.SaveImageFiles, log.Named("writer")),
		log:       log,
	}
}

// Run processes files in order. A failure in one file is logged and
// recorded; processing continues with the next. Cancelling ctx stops the
// run before the next file starts.
func (p *Processor) Run(ctx context.Context, files []string) models.RunSummary {
	summary := models.RunSummary{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		Config:    p.cfg,
	}
	log := p.log.With(zap.String("run_id", summary.RunID))
	log.Info("products filter started",
		zap.Int("files", len(files)),
		zap.Int("blacklisted_items", p.blacklist.Len()),
	)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			log.Warn("run cancelled", zap.Error(err))
			break
		}
		summary.Files = append(summary.Files, p.ProcessFile(file))
	}

	summary.FinishedAt = time.Now()
	log.Info("products filter finished",
		zap.Int("processed", len(summary.Files)),
		zap.Int("written", summary.Written()),
		zap.Duration("elapsed", summary.FinishedAt.Sub(summary.StartedAt)),
	)
	return summary
}

// ProcessFile loads, filters and writes one workbook.
func (p *Processor) ProcessFile(path string) models.FileResult {
	res := models.FileResult{Input: path}
	log := p.log.With(zap.String("file", filepath.Base(path)))

	log.Info("reading file")
	table, err := parser.LoadTable(path)
	if err != nil {
		log.Info("no products found", zap.Error(err))
		return skip(res, SkipNoData, err)
	}
	res.RowsLoaded = table.Len()
	log.Info("products found", zap.Int("rows", table.Len()))

	if err := parser.FormatROI(table); err != nil {
		log.Warn("ROI values left unformatted", zap.Error(err))
	} else {
		res.ROIFormatted = true
	}

	outcome := p.pipeline.Run(table)
	res.Stages = outcome.Stages

	log.Info("filtering out blacklisted items")
	kept, err := filter.ExcludeBlacklisted(outcome.Table, p.blacklist)
	switch {
	case eris.Is(err, filter.ErrNoBlacklist):
		log.Warn("blacklist is empty, no output written")
		return skip(res, SkipNoBlacklist, nil)
	case err != nil:
		log.Error("blacklist filtering failed", zap.Error(err))
		return skip(res, SkipBlacklistErr, err)
	}
	res.RowsKept = kept.Len()
	log.Info("filtered products", zap.Int("rows", kept.Len()))

	written, err := p.writer.Write(kept, path)
	switch {
	case eris.Is(err, output.ErrNoRows):
		log.Info("no products remaining, nothing written")
		return skip(res, SkipNoRows, nil)
	case err != nil:
		log.Error("failed to save output", zap.Error(err))
		res.MainOutput = written.Main
		return skip(res, SkipWriteErr, err)
	}

	res.MainOutput = written.Main
	res.ImagesOutput = written.Images
	return res
}

func skip(res models.FileResult, reason string, err error) models.FileResult {
	res.Skipped = reason
	if err != nil {
		res.Err = err
		res.Error = err.Error()
	}
	return res
}
