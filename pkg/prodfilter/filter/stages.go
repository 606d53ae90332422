// Package filter implements the listing filter pipeline and blacklist.
package filter

import (
	"strings"

	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/models"
)

// Stage names, in pipeline order.
const (
	StageAmazonPrice  = "amazon price"
	StageROI          = "roi"
	StageRating       = "rating"
	StageReviewCount  = "review count"
	StageOfferCount   = "offer count"
	StageAvailability = "availability"
)

// Stage is one step of the pipeline. A disabled stage is never applied.
type Stage interface {
	Name() string
	Field() models.Field
	Enabled() bool
	Apply(t *models.Table) (*models.Table, error)
}

// thresholdStage keeps rows whose coerced field value is at least threshold.
type thresholdStage struct {
	name      string
	field     models.Field
	threshold *float64
	coerce    func(models.Cell) (float64, bool)
}

// NewMinimumStage returns a stage keeping rows whose field coerces to a
// number >= threshold. A nil threshold disables the stage.
func NewMinimumStage(name string, field models.Field, threshold *float64) Stage {
	return &thresholdStage{name: name, field: field, threshold: threshold, coerce: models.Cell.Float}
}

// NewPercentStage is NewMinimumStage for percentage text such as "23.50%".
func NewPercentStage(name string, field models.Field, threshold *float64) Stage {
	return &thresholdStage{name: name, field: field, threshold: threshold, coerce: models.Cell.Percent}
}

func (s *thresholdStage) Name() string        { return s.name }
func (s *thresholdStage) Field() models.Field { return s.field }
func (s *thresholdStage) Enabled() bool       { return s.threshold != nil }

func (s *thresholdStage) Apply(t *models.Table) (*models.Table, error) {
	idx, ok := t.Index(s.field)
	if !ok {
		return nil, NewStageError(s.name, s.field, ErrMissingColumn)
	}
	threshold := *s.threshold
	return t.Filter(func(r models.Row) bool {
		c := r.Cell(idx)
		if c.IsMissing() || c.IsUndefined() {
			return false
		}
		v, ok := s.coerce(c)
		return ok && v >= threshold
	}), nil
}

// availabilityStage keeps rows whose availability contains a token,
// ignoring case.
type availabilityStage struct {
	token string
}

// NewAvailabilityStage returns the availability stage. An empty token
// disables it.
func NewAvailabilityStage(token string) Stage {
	return &availabilityStage{token: token}
}

func (s *availabilityStage) Name() string        { return StageAvailability }
func (s *availabilityStage) Field() models.Field { return models.FieldAvailability }
func (s *availabilityStage) Enabled() bool       { return s.token != "" }

func (s *availabilityStage) Apply(t *models.Table) (*models.Table, error) {
	idx, ok := t.Index(models.FieldAvailability)
	if !ok {
		return nil, NewStageError(StageAvailability, models.FieldAvailability, ErrMissingColumn)
	}
	token := strings.ToLower(s.token)
	return t.Filter(func(r models.Row) bool {
		c := r.Cell(idx)
		if c.IsMissing() {
			return false
		}
		return strings.Contains(strings.ToLower(c.String()), token)
	}), nil
}

// DefaultStages returns the six stages in their fixed order.
func DefaultStages(cfg models.FilterConfig) []Stage {
	return []Stage{
		NewMinimumStage(StageAmazonPrice, models.FieldAmazonPrice, cfg.MinAmazonPrice),
		NewPercentStage(StageROI, models.FieldROI, cfg.MinROI),
		NewMinimumStage(StageRating, models.FieldRating, cfg.MinRating),
		NewMinimumStage(StageReviewCount, models.FieldReviewCount, intThreshold(cfg.MinReviewCount)),
		NewMinimumStage(StageOfferCount, models.FieldOfferCount, intThreshold(cfg.MinOfferCount)),
		NewAvailabilityStage(cfg.Availability),
	}
}

func intThreshold(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}
