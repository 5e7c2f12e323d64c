// SPDX-License-Identifier: MIT
// Package: analogy/builder
//
// impl_beams.go - BeamsOnWalls(beams, walls, beamLabels...) fixture.
//
// Layout (indices through cfg.idFn):
//   - beams 0..beams-1 labeled LabelBeam plus beamLabels;
//   - walls beams..beams+walls-1 labeled LabelWall;
//   - beam i -[next-to]-> beam i+1;
//   - beam i -[on]-> wall beams + i·walls/beams (contiguous runs of beams per wall).
//
// With WithLetterIDs, BeamsOnWalls(4, 2, "I") yields beams a..d on walls e
// (a, b) and f (c, d); with WithOneBasedIDs, BeamsOnWalls(4, 1, "U") yields
// beams 1..4 on wall 5.

package builder

import (
	"fmt"

	"github.com/katalvlaran/analogy/lgraph"
)

// BeamsOnWalls returns a Constructor for a row of beams resting on walls.
// beams and walls must both be ≥ 1.
// Complexity: O(beams + walls).
func BeamsOnWalls(beams, walls int, beamLabels ...string) Constructor {
	return func(g *lgraph.Graph, cfg builderConfig) error {
		if err := validateMin(methodBeamsOnWalls, "beams", beams, MinVertices); err != nil {
			return err
		}
		if err := validateMin(methodBeamsOnWalls, "walls", walls, MinVertices); err != nil {
			return err
		}

		labels := append([]string{LabelBeam}, beamLabels...)
		steps := []Constructor{
			Vertices(0, beams, labels...),
			Vertices(beams, walls, LabelWall),
		}
		if beams >= MinChainNodes {
			steps = append(steps, Chain(0, beams, LabelNextTo))
		}
		for i := 0; i < beams; i++ {
			steps = append(steps, Edge(i, beams+i*walls/beams, LabelOn))
		}

		for _, step := range steps {
			if err := step(g, cfg); err != nil {
				return fmt.Errorf("%s: %w", methodBeamsOnWalls, err)
			}
		}

		return nil
	}
}
