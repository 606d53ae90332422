package filter

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/models"
)

// Outcome is the result of running the pipeline over one table.
type Outcome struct {
	// Table is the table forwarded by the last stage.
	Table *models.Table
	// Stages holds one result per stage, in order.
	Stages []models.StageResult
}

// Failed returns the results of stages that failed.
func (o Outcome) Failed() []models.StageResult {
	var failed []models.StageResult
	for _, s := range o.Stages {
		if s.Status == models.StageFailed {
			failed = append(failed, s)
		}
	}
	return failed
}

// Pipeline runs stages in a fixed order. Every stage forwards to the next:
// a failed stage passes on its own input, so one broken column never stops
// the remaining stages.
type Pipeline struct {
	stages []Stage
	log    *zap.Logger
}

// New returns the standard six-stage pipeline for cfg.
func New(cfg models.FilterConfig, log *zap.Logger) *Pipeline {
	return NewWithStages(log, DefaultStages(cfg)...)
}

// NewWithStages returns a pipeline running the given stages in order.
func NewWithStages(log *zap.Logger, stages ...Stage) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{stages: stages, log: log}
}

// Stages returns the stages in run order.
func (p *Pipeline) Stages() []Stage {
	return append([]Stage(nil), p.stages...)
}

// Run applies every stage to t.
func (p *Pipeline) Run(t *models.Table) Outcome {
	out := Outcome{Table: t}
	for _, s := range p.stages {
		var res models.StageResult
		out.Table, res = p.runStage(s, out.Table)
		out.Stages = append(out.Stages, res)
	}
	return out
}

func (p *Pipeline) runStage(s Stage, in *models.Table) (out *models.Table, res models.StageResult) {
	res = models.StageResult{Name: s.Name(), Status: models.StageSkipped, RowsIn: in.Len(), RowsOut: in.Len()}
	if !s.Enabled() || in == nil {
		return in, res
	}

	log := p.log.With(zap.String("stage", s.Name()))
	log.Info("filtering products")

	defer func() {
		if r := recover(); r != nil {
			err := NewStageError(s.Name(), s.Field(), eris.Errorf("panic: %v", r))
			out, res = p.fail(log, in, res, err)
		}
	}()

	filtered, err := s.Apply(in)
	if err != nil {
		return p.fail(log, in, res, err)
	}

	res.Status = models.StageApplied
	res.RowsOut = filtered.Len()
	log.Info("products remaining", zap.Int("rows", filtered.Len()))
	return filtered, res
}

func (p *Pipeline) fail(log *zap.Logger, in *models.Table, res models.StageResult, err error) (*models.Table, models.StageResult) {
	res.Status = models.StageFailed
	res.RowsOut = in.Len()
	res.Err = err
	res.Error = err.Error()
	log.Error("stage failed, passing its input on", zap.Error(err))
	return in, res
}
