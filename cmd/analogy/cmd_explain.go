package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/analogy/loader"
	"github.com/katalvlaran/analogy/mapping"
	"github.com/katalvlaran/analogy/search"
)

func newExplainCmd(rf *rootFlags) *cobra.Command {
	sf := &searchFlags{}
	var useDoc bool

	cmd := &cobra.Command{
		Use:   "explain FILE",
		Short: "Print the fact-level report of a mapping",
		Long: "Print which facts a mapping matches, loses and introduces. The mapping " +
			"is searched for unless --use-mapping selects the one stored in the document.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, opts, err := setup(cmd, rf, sf)
			if err != nil {
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
			if !useDoc {
				res, err := search.Solve(cmd.Context(), g1, g2, opts...)
				if err != nil {
					return err
				}
				m = res.Mapping
			}

			report, err := mapping.Explain(g1, g2, m)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.String())

			return nil
		},
	}
	addSearchFlags(cmd, sf)
	cmd.Flags().BoolVar(&useDoc, "use-mapping", false, "explain the document's mapping instead of searching")

	return cmd
}
