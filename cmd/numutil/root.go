package main

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/rpgo/numutil/internal/calculation"
)

type rootOptions struct {
	verbose bool
	exact   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "numutil",
		Short:        "Arithmetic, currency, percentage, rounding and range helpers",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every evaluation to stderr")
	cmd.PersistentFlags().BoolVar(&opts.exact, "exact", false, "use decimal arithmetic instead of float64")

	cmd.AddCommand(newDemoCmd(opts))
	cmd.AddCommand(newBatchCmd(opts))
	for _, c := range newOperationCmds(opts) {
		cmd.AddCommand(c)
	}
	return cmd
}

// newLogger returns a logfmt logger on w when verbose, a nop logger otherwise.
func newLogger(w io.Writer, verbose bool) log.Logger {
	if !verbose {
		return log.NewNopLogger()
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	return level.NewFilter(logger, level.AllowDebug())
}

// service builds the calculation service for a command invocation.
func (o *rootOptions) service(cmd *cobra.Command) calculation.Service {
	var svcOpts []calculation.Option
	if o.exact {
		svcOpts = append(svcOpts, calculation.WithExactArithmetic())
	}
	return calculation.NewLoggingService(newLogger(cmd.ErrOrStderr(), o.verbose), calculation.NewService(svcOpts...))
}
