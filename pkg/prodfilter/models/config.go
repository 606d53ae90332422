package models

// FilterConfig holds the resolved filter thresholds. A nil threshold
// disables its stage. The value is read-only once resolved.
type FilterConfig struct {
	// MinAmazonPrice is the minimum Amazon price.
	MinAmazonPrice *float64 `json:"min_amazon_price,omitempty"`
	// MinROI is the minimum ROI, in percent.
	MinROI *float64 `json:"min_roi,omitempty"`
	// MinRating is the minimum product rating.
	MinRating *float64 `json:"min_rating,omitempty"`
	// MinReviewCount is the minimum number of reviews.
	MinReviewCount *int `json:"min_review_count,omitempty"`
	// MinOfferCount is the minimum number of marketplace offers.
	MinOfferCount *int `json:"min_offer_count,omitempty"`
	// Availability is the token matched against the availability column.
	// Empty disables the availability stage.
	Availability string `json:"availability,omitempty"`
	// SaveImageFiles enables the companion images workbook.
	SaveImageFiles bool `json:"save_image_files"`
}

// AvailabilityEnabled reports whether the availability stage runs.
func (c FilterConfig) AvailabilityEnabled() bool {
	return c.Availability != ""
}
