package rules_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validify/pkg/rules"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	empty := []any{nil, "", 0, 0.0, float32(0), uint(0), false, math.NaN()}
	for _, v := range empty {
		assert.True(t, rules.IsEmpty(v), "%#v", v)
	}

	present := []any{" ", "0", 1, -1.5, true, []string{""}, []any{nil}, struct{}{}, []string{}, []any{}, []int{}, map[string]int{}}
	for _, v := range present {
		assert.False(t, rules.IsEmpty(v), "%#v", v)
	}
}

func TestLength(t *testing.T) {
	t.Parallel()

	n, ok := rules.Length("héllo")
	assert.True(t, ok)
	assert.Equal(t, 5, n)

	n, ok = rules.Length([]int{1, 2, 3})
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = rules.Length(12)
	assert.False(t, ok)
}

func TestStringify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", rules.Stringify(nil))
	assert.Equal(t, "abc", rules.Stringify("abc"))
	assert.Equal(t, "25", rules.Stringify(25.0))
	assert.Equal(t, "0.5", rules.Stringify(0.5))
	assert.Equal(t, "true", rules.Stringify(true))
	assert.Equal(t, "a,b", rules.Stringify([]string{"a", "b"}))
	assert.Equal(t, "a,1", rules.Stringify([]any{"a", 1}))
}
