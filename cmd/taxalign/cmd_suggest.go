package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taxalign/internal/candidate"
	"taxalign/internal/taxonomy"
)

func newSuggestCmd() *cobra.Command {
	var (
		target   string
		lemma    string
		n        int
		minScore float64
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "List the target lemmas nearest to a lemma",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tgt, err := taxonomy.LoadFile(target)
			if err != nil {
				return err
			}

			list := candidate.Suggest(lemma, taxonomy.BuildLemmaIndex(tgt), n, minScore)

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintf(out, "no lemma in %s is similar to %q\n", tgt.Name(), lemma)
				return nil
			}

			for i, s := range list {
				fmt.Fprintf(out, "%d. %s (%.0f%%) %s\n", i+1, s.Lemma, s.Score*100, strings.Join(s.Synsets, ","))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Target taxonomy YAML file (required)")
	cmd.Flags().StringVar(&lemma, "lemma", "", "Lemma to look up (required)")
	cmd.Flags().IntVarP(&n, "count", "n", 5, "Number of suggestions")
	cmd.Flags().Float64Var(&minScore, "min-score", candidate.DefaultMinSimilarity, "Minimum similarity (0-1)")

	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("lemma")

	return cmd
}
