package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/paylens/fee-insights/pkg/models/domain"
)

// WriteCSV flattens the report into one row per detail line.
func WriteCSV(w io.Writer, report *domain.Report) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	headers := []string{"Section", "Name", "Value", "Unit", "Description"}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, section := range report.Sections {
		for _, detail := range section.Details {
			record := []string{
				section.Title,
				detail.Name,
				fmt.Sprintf("%v", detail.Value),
				detail.Unit,
				detail.Description,
			}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("error writing CSV record: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
