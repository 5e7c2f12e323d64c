package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	converters "github.com/katalvlaran/analogy/converterts"
	"github.com/katalvlaran/analogy/lgraph"
	"github.com/katalvlaran/analogy/loader"
)

func newInspectCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Summarize the shape of the document's graphs",
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

			out := cmd.OutOrStdout()
			for _, side := range []struct {
				name string
				g    *lgraph.Graph
			}{{"source", g1}, {"target", g2}} {
				s, err := converters.Summarize(side.g)
				if err != nil {
					return err
				}
				printSummary(out, side.name, s)
			}
			fmt.Fprintf(out, "mapping: %d couples\n", doc.Mapping().Len())

			return nil
		},
	}
}

func printSummary(w io.Writer, name string, s converters.Summary) {
	fmt.Fprintf(w, "%s: %d vertices, %d vertex labels, %d edges\n",
		name, s.Vertices, s.LabeledVertices, s.LabeledEdges)
	fmt.Fprintf(w, "  components: %d\n", len(s.Components))
	for _, c := range s.Components {
		fmt.Fprintf(w, "    [%s]\n", strings.Join(c, " "))
	}
	fmt.Fprintf(w, "  acyclic: %t\n", s.Acyclic)
	if s.SelfLoops > 0 {
		fmt.Fprintf(w, "  self-loops: %d\n", s.SelfLoops)
	}
}
