package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/analogy/config"
	"github.com/katalvlaran/analogy/loader"
)

const (
	beamsDoc = "../../loader/testdata/beams.yaml"
	solarDoc = "../../loader/testdata/solar.toml"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestMap_Solar(t *testing.T) {
	out, _, err := run(t, "map", solarDoc)
	require.NoError(t, err)
	assert.Equal(t, "planet -> electron\nsun -> nucleus\nSimilarity: 88.89%\n", out)
}

func TestMap_BeamsFindsAGoodMapping(t *testing.T) {
	out, _, err := run(t, "map", beamsDoc, "--seed", "3", "--restarts", "4", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "e -> 5\n")
	assert.Contains(t, out, "f -> 5\n")
	last := out[strings.LastIndex(strings.TrimSuffix(out, "\n"), "\n")+1:]
	assert.Contains(t, []string{"Similarity: 72.73%\n", "Similarity: 66.67%\n"}, last)
}

func TestMap_WriteThenScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "found.yaml")
	_, _, err := run(t, "map", solarDoc, "--write", path)
	require.NoError(t, err)

	out, _, err := run(t, "score", path)
	require.NoError(t, err)
	assert.Equal(t, "planet -> electron\nsun -> nucleus\nScore: 8 / 9\nSimilarity: 88.89%\n", out)
}

func TestMap_ExhaustiveFromEnvironment(t *testing.T) {
	t.Setenv(config.EnvAlgorithm, "exhaustive")
	out, _, err := run(t, "map", solarDoc)
	require.NoError(t, err)
	assert.Contains(t, out, "Similarity: 88.89%")

	_, _, err = run(t, "map", beamsDoc)
	require.Error(t, err, "beams exceed the default exhaustive guard")
}

func TestScore_Beams(t *testing.T) {
	out, _, err := run(t, "score", beamsDoc)
	require.NoError(t, err)
	assert.Contains(t, out, "a -> 1\n")
	assert.Contains(t, out, "Score: 24 / 33\n")
	assert.Contains(t, out, "Similarity: 72.73%\n")
}

func TestExplain_UseMapping(t *testing.T) {
	out, _, err := run(t, "explain", beamsDoc, "--use-mapping")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted vertices (4):\n")
	assert.Contains(t, out, "added vertices (4):\n")
	assert.Contains(t, out, "split vertices (1):\n  5\n")
	assert.Contains(t, out, "score: 24 / 33\n")
	assert.NotContains(t, out, "deleted edges")
}

func TestExplain_Searched(t *testing.T) {
	out, _, err := run(t, "explain", solarDoc)
	require.NoError(t, err)
	assert.Contains(t, out, "deleted vertices (1):\n  sun:hot\n")
	assert.Contains(t, out, "similarity: 88.89%")
}

func TestInspect_Beams(t *testing.T) {
	out, _, err := run(t, "inspect", beamsDoc)
	require.NoError(t, err)
	assert.Contains(t, out, "source: 6 vertices, 10 vertex labels, 7 edges\n  components: 1\n")
	assert.Contains(t, out, "target: 5 vertices, 9 vertex labels, 7 edges\n")
	assert.Contains(t, out, "acyclic: true\n")
	assert.Contains(t, out, "mapping: 6 couples\n")
}

func TestLogging_JSONCarriesRunID(t *testing.T) {
	_, stderr, err := run(t, "map", solarDoc, "--log-format", "json")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	require.NotEmpty(t, lines)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "graphs loaded", rec["msg"])
	assert.NotEmpty(t, rec["run_id"])
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analogy.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search]\nalgorithm = \"exhaustive\"\nmax_exhaustive_pairs = 2\n"), 0o600))

	_, _, err := run(t, "--config", path, "map", solarDoc)
	require.Error(t, err, "4 pairs exceed the configured guard")

	out, _, err := run(t, "--config", path, "map", solarDoc, "--allow-large")
	require.NoError(t, err)
	assert.Contains(t, out, "Similarity: 88.89%")
}

func TestErrors(t *testing.T) {
	_, _, err := run(t, "map", solarDoc, "--algorithm", "annealing")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "map", solarDoc, "--restarts", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "score")
	assert.Error(t, err)

	_, _, err = run(t, "score", filepath.Join(t.TempDir(), "graphs.json"))
	assert.Error(t, err)

	_, _, err = run(t, "--log-level", "loud", "score", solarDoc)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestScore_RejectsCrossedMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crossed.yaml")
	doc := "source: {vertices: [{id: a, labels: [beam]}]}\n" +
		"target: {vertices: [{id: \"1\", labels: [beam]}]}\n" +
		"mapping: [{a: \"1\", b: a}]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, _, err := run(t, "score", path)
	assert.ErrorIs(t, err, loader.ErrInvalidCouple)
	assert.Empty(t, out)
}
