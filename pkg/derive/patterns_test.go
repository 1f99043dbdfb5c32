package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternCache(t *testing.T) {
	t.Parallel()

	c := newPatternCache(2)

	a1, err := c.compile("^a$")
	require.NoError(t, err)
	a2, err := c.compile("^a$")
	require.NoError(t, err)
	assert.Same(t, a1, a2)

	_, err = c.compile("(")
	assert.Error(t, err)
	assert.Equal(t, 1, c.len())

	_, _ = c.compile("^b$")
	_, _ = c.compile("^a$") // a becomes most recent
	_, _ = c.compile("^c$") // evicts b
	assert.Equal(t, 2, c.len())

	a3, err := c.compile("^a$")
	require.NoError(t, err)
	assert.Same(t, a1, a3)
	_, ok := c.items["^b$"]
	assert.False(t, ok)

	assert.Equal(t, defaultPatternCacheSize, newPatternCache(0).capacity)
}
