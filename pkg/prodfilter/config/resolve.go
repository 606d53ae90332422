package config

import (
	"regexp"
	"strconv"

	"go.uber.org/zap"

	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/models"
)

var (
	signedDecimalPattern = regexp.MustCompile(`-?\d+\.?\d*`)
	decimalPattern       = regexp.MustCompile(`\d+\.?\d*`)
	integerPattern       = regexp.MustCompile(`\d+`)
	stockPattern         = regexp.MustCompile(`(?i)stock`)
	letterRunPattern     = regexp.MustCompile(`[A-Za-z]+`)
	truePattern          = regexp.MustCompile(`(?i)true`)
)

// Resolve turns raw settings into a FilterConfig. A threshold that holds no
// usable number disables its stage; it is never an error.
func Resolve(s Settings, log *zap.Logger) models.FilterConfig {
	if log == nil {
		log = zap.NewNop()
	}
	cfg := models.FilterConfig{
		MinAmazonPrice: resolveFloat(log, "AmazonPrice", s.MinAmazonPrice, decimalPattern),
		MinROI:         resolveFloat(log, "ROI", s.MinROI, signedDecimalPattern),
		MinRating:      resolveFloat(log, "Rating", s.MinRating, decimalPattern),
		MinReviewCount: resolveInt(log, "ReviewCount", s.MinReviewCount),
		MinOfferCount:  resolveInt(log, "OfferCount", s.MinOfferCount),
		Availability:   ResolveAvailability(s.Availability),
		SaveImageFiles: truePattern.MatchString(s.SaveImageFiles),
	}
	return cfg
}

// ResolveAvailability returns the token matched against each row's
// availability, or "" when the directive does not mention stock. The token
// is the first run of letters, so "In Stock" yields "In".
func ResolveAvailability(raw string) string {
	if !stockPattern.MatchString(raw) {
		return ""
	}
	return letterRunPattern.FindString(raw)
}

func resolveFloat(log *zap.Logger, name, raw string, pattern *regexp.Regexp) *float64 {
	m := pattern.FindString(raw)
	if m == "" {
		log.Debug("threshold disabled", zap.String("setting", name), zap.String("raw", raw))
		return nil
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		log.Warn("threshold unparseable, disabled", zap.String("setting", name), zap.String("raw", raw), zap.Error(err))
		return nil
	}
	return &v
}

func resolveInt(log *zap.Logger, name, raw string) *int {
	m := integerPattern.FindString(raw)
	if m == "" {
		log.Debug("threshold disabled", zap.String("setting", name), zap.String("raw", raw))
		return nil
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		log.Warn("threshold unparseable, disabled", zap.String("setting", name), zap.String("raw", raw), zap.Error(err))
		return nil
	}
	return &v
}
