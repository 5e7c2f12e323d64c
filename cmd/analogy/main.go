// Command analogy finds and scores structure mappings between two labeled
// graphs stored in a YAML or TOML document.
//
//	analogy map beams.yaml --seed 7 --restarts 8
//	analogy score beams.yaml
//	analogy explain beams.yaml --algorithm exhaustive
//	analogy inspect solar.toml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
