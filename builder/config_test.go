package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIDSchemeOptions verifies that ID scheme options apply in order.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "7", newBuilderConfig().idFn(7))
	assert.Equal(t, "e", newBuilderConfig(WithLetterIDs()).idFn(4))
	assert.Equal(t, "5", newBuilderConfig(WithOneBasedIDs()).idFn(4))
	assert.Equal(t, "AB", newBuilderConfig(WithExcelColumnIDs()).idFn(27))
	assert.Equal(t, "w2", newBuilderConfig(WithSymbNumb("w")).idFn(2))
	assert.Equal(t, "3", newBuilderConfig(WithLetterIDs(), WithDefaultIDs()).idFn(3))

	assert.Panics(t, func() { WithIDScheme(nil) })
}

// TestRNGOptions verifies rng wiring and WithSeed reproducibility.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	assert.Nil(t, newBuilderConfig().rng)

	r := rand.New(rand.NewSource(123))
	assert.Same(t, r, newBuilderConfig(WithRand(r)).rng)
	assert.Panics(t, func() { WithRand(nil) })

	c1 := newBuilderConfig(WithSeed(42))
	c2 := newBuilderConfig(WithSeed(42))
	require.NotNil(t, c1.rng)
	assert.Equal(t, c1.rng.Int63(), c2.rng.Int63())
	assert.Equal(t, c1.rng.Int63(), c2.rng.Int63())
}
