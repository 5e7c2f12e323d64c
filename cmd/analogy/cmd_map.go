package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/analogy/loader"
	"github.com/katalvlaran/analogy/search"
)

func newMapCmd(rf *rootFlags) *cobra.Command {
	sf := &searchFlags{}
	var writePath string

	cmd := &cobra.Command{
		Use:   "map FILE",
		Short: "Search for the best mapping between the document's graphs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, opts, err := setup(cmd, rf, sf)
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
			logger.Info("graphs loaded",
				slog.String("file", args[0]),
				slog.Int("source_vertices", g1.VertexCount()),
				slog.Int("target_vertices", g2.VertexCount()),
			)

			res, err := search.Solve(cmd.Context(), g1, g2, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Mapping.Len() > 0 {
				fmt.Fprintln(out, res.Mapping.Render())
			}
			fmt.Fprintln(out, formatSimilarity(res.Similarity))

			if writePath != "" {
				if err := loader.Save(writePath, loader.NewDocument(g1, g2, res.Mapping)); err != nil {
					return err
				}
				logger.Info("document written", slog.String("file", writePath))
			}

			return nil
		},
	}
	addSearchFlags(cmd, sf)
	cmd.Flags().StringVar(&writePath, "write", "", "save the graphs and the found mapping to this document")

	return cmd
}
