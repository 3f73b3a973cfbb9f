package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"workhub/utils"
)

// BuildCSV renders header and rows as RFC 4180 CSV. Fields containing
// commas, quotes or newlines are quoted.
func BuildCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write csv rows: %w", err)
	}
	return buf.Bytes(), nil
}

// ReportName returns "<report>-<YYYY-MM-DD>.csv" for the day of now.
func ReportName(report string, now time.Time) string {
	return fmt.Sprintf("%s-%s.csv", report, now.Format(utils.DateLayout))
}
