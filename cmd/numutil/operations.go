package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/numutil/internal/domain"
	"github.com/rpgo/numutil/internal/output"
)

type operationCmd struct {
	use   string
	short string
	op    domain.OperationKind
}

var operationCmds = []operationCmd{
	{"add <a> <b>", "Print a + b", domain.OpAdd},
	{"subtract <a> <b>", "Print a - b", domain.OpSubtract},
	{"multiply <a> <b>", "Print a * b", domain.OpMultiply},
	{"divide <a> <b>", "Print a / b; fails when b is zero", domain.OpDivide},
	{"currency <amount>", "Format amount as USD with two decimals", domain.OpFormatCurrency},
	{"percentage <value> <percent>", "Print percent % of value", domain.OpPercentage},
	{"round <value> <decimals>", "Round value to decimals fractional digits", domain.OpRound},
	{"in-range <value> <min> <max>", "Print whether min <= value <= max", domain.OpInRange},
}

var operationAliases = map[domain.OperationKind][]string{
	domain.OpSubtract:       {"sub"},
	domain.OpMultiply:       {"mul"},
	domain.OpDivide:         {"div"},
	domain.OpFormatCurrency: {"format-currency"},
	domain.OpPercentage:     {"pct"},
}

var exampleArgs = []string{"-12.5", "2", "100"}

func newOperationCmds(opts *rootOptions) []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(operationCmds))
	for _, oc := range operationCmds {
		op := oc.op
		cmds = append(cmds, &cobra.Command{
			Use:     oc.use,
			Short:   oc.short,
			Aliases: operationAliases[op],
			Args:    cobra.ExactArgs(op.Arity()),
			// Negative numbers must follow "--" so they are not read as flags.
			Example: "  numutil " + strings.Fields(oc.use)[0] + " -- " + strings.Join(exampleArgs[:op.Arity()], " "),
			RunE: func(cmd *cobra.Command, args []string) error {
				values, err := parseArgs(args)
				if err != nil {
					return err
				}
				res, err := opts.service(cmd).Evaluate(domain.Request{Operation: op, Args: values})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), output.FormatValue(res.Value))
				return nil
			},
		})
	}
	return cmds
}

func parseArgs(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %q is not a number", i+1, a)
		}
		values[i] = v
	}
	return values, nil
}
