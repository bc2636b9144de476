package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"taxalign/internal/config"
	"taxalign/internal/diagnostic"
)

func newCheckCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a config file and list the enabled constraints",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var diags diagnostic.Diagnostics

			cfg, err := config.LoadFile(path)
			if err != nil {
				diags.AddError(diagnostic.CodeInvalidConfig, err.Error(), "", "")
				return diags.Error()
			}

			types, err := cfg.WeightedTypes()
			if err != nil {
				diags.AddError(diagnostic.CodeInvalidConfig, err.Error(), "", "")
				return diags.Error()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ %s is valid\n", path)
			fmt.Fprintf(out, "heuristic=%g tie_epsilon=%g max_rounds=%d workers=%d\n",
				cfg.Heuristic, cfg.TieEpsilon, cfg.MaxRounds, cfg.Workers)

			for _, t := range types {
				fmt.Fprintf(out, "  %-9s weight=%g\n", t.Type.Code(), t.Weight)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&path, "config", "", "Config YAML file (required)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
