package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rpgo/numutil/internal/calculation"
	"github.com/rpgo/numutil/internal/domain"
	"github.com/rpgo/numutil/internal/output"
)

func newDemoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every operation on fixed sample inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), opts.service(cmd))
		},
	}
}

func runDemo(w io.Writer, svc calculation.Service) error {
	eval := func(op domain.OperationKind, args ...float64) (string, error) {
		res, err := svc.Evaluate(domain.Request{Operation: op, Args: args})
		if err != nil {
			return "", err
		}
		return output.FormatValue(res.Value), nil
	}

	lines := []struct {
		format string
		op     domain.OperationKind
		args   []float64
	}{
		{"Basic Math:\n  10 + 5 = %s\n", domain.OpAdd, []float64{10, 5}},
		{"  10 - 5 = %s\n", domain.OpSubtract, []float64{10, 5}},
		{"  10 * 5 = %s\n", domain.OpMultiply, []float64{10, 5}},
		{"  10 / 5 = %s\n", domain.OpDivide, []float64{10, 5}},
		{"\nCurrency: %s\n", domain.OpFormatCurrency, []float64{99.9}},
		{"\n15%% of 200 = %s\n", domain.OpPercentage, []float64{200, 15}},
		{"\nPi rounded to 2 decimals: %s\n", domain.OpRound, []float64{3.14159265359, 2}},
		{"\n50 is in range 0-100: %s\n", domain.OpInRange, []float64{50, 0, 100}},
	}
	for _, l := range lines {
		v, err := eval(l.op, l.args...)
		if err != nil {
			return fmt.Errorf("demo %s: %w", l.op, err)
		}
		fmt.Fprintf(w, l.format, v)
	}
	return nil
}
