// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: document schema, formats and sentinel errors.

package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors.
var (
	// ErrUnknownFormat indicates a file extension or Format the loader cannot handle.
	ErrUnknownFormat = errors.New("loader: unknown document format")

	// ErrMissingGraph indicates a document without a source or target graph.
	ErrMissingGraph = errors.New("loader: document is missing a graph")

	// ErrInvalidCouple indicates a mapping entry with an empty side, or one
	// whose a is not a source vertex or whose b is not a target vertex.
	ErrInvalidCouple = errors.New("loader: mapping entry has an empty vertex")
)

// Format is a document encoding.
type Format int

const (
	// FormatYAML is selected by .yaml and .yml.
	FormatYAML Format = iota + 1
	// FormatTOML is selected by .toml.
	FormatTOML
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the Format from the file extension (case-insensitive).
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("FormatFromPath(%q): %w", path, ErrUnknownFormat)
	}
}

// Vertex declares a vertex and its labels.
type Vertex struct {
	ID     string   `yaml:"id" toml:"id"`
	Labels []string `yaml:"labels,omitempty" toml:"labels,omitempty"`
}

// Edge declares one labeled edge per entry of Labels.
type Edge struct {
	From   string   `yaml:"from" toml:"from"`
	To     string   `yaml:"to" toml:"to"`
	Labels []string `yaml:"labels" toml:"labels"`
}

// Graph is the serialized form of an lgraph.Graph.
type Graph struct {
	Vertices []Vertex `yaml:"vertices,omitempty" toml:"vertices,omitempty"`
	Edges    []Edge   `yaml:"edges,omitempty" toml:"edges,omitempty"`
}

// Couple is the serialized form of a mapping.Couple.
type Couple struct {
	A string `yaml:"a" toml:"a"`
	B string `yaml:"b" toml:"b"`
}

// Document is a graph pair plus an optional mapping.
type Document struct {
	Source  *Graph   `yaml:"source" toml:"source"`
	Target  *Graph   `yaml:"target" toml:"target"`
	Couples []Couple `yaml:"mapping,omitempty" toml:"mapping,omitempty"`
}
