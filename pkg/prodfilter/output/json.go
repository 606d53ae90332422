package output

import (
	"encoding/json"

	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/models"
)

// ToJSON serializes a run summary.
func ToJSON(summary *models.RunSummary, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(summary, "", "  ")
	}
	return json.Marshal(summary)
}
