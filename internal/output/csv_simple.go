package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/numutil/internal/domain"
)

// CSVFormatter writes one row per result in request order.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(results *domain.BatchResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Name", "Operation", "Args", "Value", "Error"}); err != nil {
		return nil, err
	}
	for _, r := range results.Results {
		row := []string{
			r.Name,
			string(r.Operation),
			domain.FormatArgs(r.Args),
			FormatValue(r.Value),
			r.Error,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
