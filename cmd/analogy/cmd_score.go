package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/analogy/loader"
	"github.com/katalvlaran/analogy/mapping"
)

func newScoreCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "score FILE",
		Short: "Score the mapping stored in the document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, _, err := setup(cmd, rf, nil); err != nil {
				return err
			}

			doc, err := loader.Load(args[0])
			if err != nil {
				return err
			}
			g1, g2, err := doc.Graphs()
			if err != nil {
				return err
			}
			m := doc.Mapping()
			sim, err := mapping.Similarity(g1, g2, m)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if m.Len() > 0 {
				fmt.Fprintln(out, m.Render())
			}
			fmt.Fprintf(out, "Score: %d / %d\n", mapping.Score(g1, g2, m), mapping.Denominator(g1, g2))
			fmt.Fprintln(out, formatSimilarity(sim))

			return nil
		},
	}
}
