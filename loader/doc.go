// Package loader reads and writes graph-pair documents.
//
// A document holds a source graph, a target graph and, optionally, a mapping
// between them. It is written in YAML (gopkg.in/yaml.v3) or TOML
// (github.com/pelletier/go-toml/v2); the format follows the file extension.
//
//	source:
//	  vertices:
//	    - {id: a, labels: [beam, I]}
//	  edges:
//	    - {from: a, to: e, labels: [on]}
//	target:
//	  vertices: [...]
//	  edges: [...]
//	mapping:
//	  - {a: a, b: "1"}
//
// Unknown keys are rejected so that typos surface as errors instead of
// silently missing facts.
package loader
