package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/paylens/fee-insights/pkg/models/domain"
)

func WriteJSON(w io.Writer, report *domain.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("error encoding JSON report: %w", err)
	}
	return nil
}
