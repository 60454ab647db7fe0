package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/numutil/internal/domain"
)

// ConsoleFormatter prints one line per result followed by a short summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.BatchResult) ([]byte, error) {
	var buf bytes.Buffer
	for _, r := range results.Results {
		call := fmt.Sprintf("%s(%s)", r.Operation, domain.FormatArgs(r.Args))
		if r.Failed() {
			fmt.Fprintf(&buf, "%s: %s error: %s\n", r.Name, call, r.Error)
			continue
		}
		fmt.Fprintf(&buf, "%s: %s = %s\n", r.Name, call, FormatValue(r.Value))
	}
	total := len(results.Results)
	fmt.Fprintln(&buf, "--------------------------------")
	fmt.Fprintf(&buf, "%d operations, %d failed (%s)\n", total, results.Failures, FormatPercentage(failureRate(results.Failures, total)))
	return buf.Bytes(), nil
}
