// Package prodfilter filters product listing workbooks by price, ROI,
// rating, review count, offer count, availability and a title blacklist.
package prodfilter

import (
	"go.uber.org/zap"

	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/models"
)

// Options configures a Processor.
type Options struct {
	// Config holds the resolved thresholds. It is not modified.
	Config models.FilterConfig
	// Blacklist holds the title exclusion patterns. An empty blacklist
	// yields no output for any file.
	Blacklist *models.Blacklist
	// OutputDir receives the filtered workbooks.
	OutputDir string
	// Logger receives progress logs. Defaults to a no-op logger.
	Logger *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
