package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/numutil/internal/calculation"
	"github.com/rpgo/numutil/internal/config"
	"github.com/rpgo/numutil/internal/output"
)

func newBatchCmd(opts *rootOptions) *cobra.Command {
	var (
		file   string
		format string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Evaluate the operations listed in a YAML file",
		Example: `  numutil batch --file ops.yaml --format json

ops.yaml:
  operations:
    - name: sum
      op: add
      args: [10, 5]`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := output.GetFormatterByName(format)
			if err != nil {
				return err
			}
			batch, err := config.NewInputParser().LoadFromFile(file)
			if err != nil {
				return err
			}
			results := calculation.EvaluateBatch(opts.service(cmd), *batch)
			if err := output.WriteFormatted(cmd.OutOrStdout(), f, &results); err != nil {
				return err
			}
			if strict && results.Failures > 0 {
				return fmt.Errorf("%d of %d operations failed", results.Failures, len(results.Results))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "batch file (YAML or JSON)")
	cmd.Flags().StringVarP(&format, "format", "o", "console", "output format: console, csv, json, yaml")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any operation fails")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
