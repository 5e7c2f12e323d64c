// SPDX-License-Identifier: MIT
//
// File: loader.go
// Role: decode/encode documents and convert them to and from lgraph/mapping values.

package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/analogy/lgraph"
	"github.com/katalvlaran/analogy/mapping"
)

// Load reads the document at path, choosing the decoder from its extension.
func Load(path string) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document '%s': %w", path, err)
	}

	doc, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Decode parses a document from r. Unknown keys are errors. Both graphs must
// be present and every mapping entry must name two vertices.
func Decode(r io.Reader, f Format) (*Document, error) {
	var doc Document
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("Decode(%v): %w", f, ErrUnknownFormat)
	}

	if err := doc.validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

func (d *Document) validate() error {
	if d.Source == nil {
		return fmt.Errorf("source: %w", ErrMissingGraph)
	}
	if d.Target == nil {
		return fmt.Errorf("target: %w", ErrMissingGraph)
	}
	for i, c := range d.Couples {
		if c.A == "" || c.B == "" {
			return fmt.Errorf("mapping[%d] (%q, %q): %w", i, c.A, c.B, ErrInvalidCouple)
		}
	}

	return nil
}

// Encode writes d to w in format f.
func Encode(w io.Writer, f Format, d *Document) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("failed to write YAML: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(d); err != nil {
			return fmt.Errorf("failed to write TOML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("Encode(%v): %w", f, ErrUnknownFormat)
	}
}

// Save writes d to path, choosing the encoder from its extension.
func Save(path string, d *Document) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = Encode(&buf, f, d); err != nil {
		return err
	}
	if err = os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write document '%s': %w", path, err)
	}

	return nil
}

// Graphs builds the source and target graphs and checks that every mapping
// entry pairs a source vertex (a) with a target vertex (b).
func (d *Document) Graphs() (*lgraph.Graph, *lgraph.Graph, error) {
	if err := d.validate(); err != nil {
		return nil, nil, err
	}
	g1, err := d.Source.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("source: %w", err)
	}
	g2, err := d.Target.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("target: %w", err)
	}
	for i, c := range d.Couples {
		if !g1.HasVertex(c.A) || !g2.HasVertex(c.B) {
			return nil, nil, fmt.Errorf("mapping[%d] (%q, %q): not a source→target pair: %w",
				i, c.A, c.B, ErrInvalidCouple)
		}
	}

	return g1, g2, nil
}

// Mapping returns the document's couples as a Mapping (empty when absent).
func (d *Document) Mapping() *mapping.Mapping {
	m := mapping.New()
	for _, c := range d.Couples {
		m.Add(mapping.Couple{A: c.A, B: c.B})
	}

	return m
}

// Build converts g into an lgraph.Graph. Vertices are added before edges;
// edge endpoints not declared as vertices are registered unlabeled.
func (g *Graph) Build() (*lgraph.Graph, error) {
	out := lgraph.NewGraph()
	for i, v := range g.Vertices {
		if err := out.AddVertex(v.ID, v.Labels...); err != nil {
			return nil, fmt.Errorf("vertices[%d]: %w", i, err)
		}
	}
	for i, e := range g.Edges {
		if err := out.AddEdge(e.From, e.To, e.Labels...); err != nil {
			return nil, fmt.Errorf("edges[%d]: %w", i, err)
		}
	}

	return out, nil
}

// FromGraph serializes g: one Vertex per vertex (sorted), one Edge per
// (origin, destination) pair carrying all its labels.
func FromGraph(g *lgraph.Graph) *Graph {
	out := &Graph{}
	for _, v := range g.Vertices() {
		out.Vertices = append(out.Vertices, Vertex{ID: v, Labels: g.Labels(v)})
	}
	for _, le := range g.LabeledEdges() {
		n := len(out.Edges)
		if n > 0 && out.Edges[n-1].From == le.Origin && out.Edges[n-1].To == le.Destination {
			out.Edges[n-1].Labels = append(out.Edges[n-1].Labels, le.Label)
			continue
		}
		out.Edges = append(out.Edges, Edge{From: le.Origin, To: le.Destination, Labels: []string{le.Label}})
	}

	return out
}

// NewDocument serializes a graph pair and an optional mapping.
func NewDocument(g1, g2 *lgraph.Graph, m *mapping.Mapping) *Document {
	d := &Document{Source: FromGraph(g1), Target: FromGraph(g2)}
	for _, c := range m.Couples() {
		d.Couples = append(d.Couples, Couple{A: c.A, B: c.B})
	}

	return d
}
