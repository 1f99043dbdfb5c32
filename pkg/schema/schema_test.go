package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validify/pkg/rules"
	"github.com/dmitrymomot/validify/pkg/schema"
)

func personSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.New(
		schema.Field{Name: "name", Rules: rules.RuleSet{Required: true, MinLength: rules.Int(3), MaxLength: rules.Int(10)}},
		schema.Field{Name: "age", Rules: rules.RuleSet{Required: true, Min: rules.Float(18), Max: rules.Float(30)}},
	)
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("keeps declaration order", func(t *testing.T) {
		t.Parallel()
		s := schema.MustNew(
			schema.Field{Name: "z"},
			schema.Field{Name: "a"},
			schema.Field{Name: "m"},
		)
		assert.Equal(t, []string{"z", "a", "m"}, s.Fields())
		assert.Equal(t, 3, s.Len())
		assert.True(t, s.Has("a"))
		assert.False(t, s.Has("b"))
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		t.Parallel()
		_, err := schema.New(schema.Field{Name: "a"}, schema.Field{Name: "a"})
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrDuplicateField)
	})

	t.Run("rejects empty names", func(t *testing.T) {
		t.Parallel()
		_, err := schema.New(schema.Field{Name: ""})
		assert.ErrorIs(t, err, schema.ErrEmptyFieldName)
	})

	t.Run("MustNew panics on invalid declaration", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			schema.MustNew(schema.Field{Name: "a"}, schema.Field{Name: "a"})
		})
	})

	t.Run("Fields returns a copy", func(t *testing.T) {
		t.Parallel()
		s := schema.MustNew(schema.Field{Name: "a"}, schema.Field{Name: "b"})
		names := s.Fields()
		names[0] = "changed"
		assert.Equal(t, []string{"a", "b"}, s.Fields())
	})
}

func TestSchema_Rules(t *testing.T) {
	t.Parallel()

	s := personSchema(t)

	rs, err := s.Rules("age")
	require.NoError(t, err)
	assert.True(t, rs.Required)
	assert.Equal(t, 30.0, *rs.Max)

	_, err = s.Rules("email")
	require.Error(t, err)
	assert.True(t, schema.IsUnknownField(err))
	assert.ErrorIs(t, err, schema.ErrUnknownField)
}

func TestSchema_ValidateField(t *testing.T) {
	t.Parallel()

	s := personSchema(t)

	t.Run("valid value", func(t *testing.T) {
		t.Parallel()
		res, err := s.ValidateField("name", schema.Entity{"name": "Alice"})
		require.NoError(t, err)
		assert.True(t, res.OK)
		assert.Empty(t, res.Message)
		assert.Equal(t, rules.RuleNone, res.Rule)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		res, err := s.ValidateField("age", schema.Entity{"age": 31.0})
		require.NoError(t, err)
		assert.False(t, res.OK)
		assert.Equal(t, `"age" must be equal or lower than 30`, res.Message)
		assert.Equal(t, rules.RuleMax, res.Rule)
	})

	t.Run("missing value is empty", func(t *testing.T) {
		t.Parallel()
		res, err := s.ValidateField("age", schema.Entity{})
		require.NoError(t, err)
		assert.False(t, res.OK)
		assert.Equal(t, `"age" is required!`, res.Message)
	})

	t.Run("custom message", func(t *testing.T) {
		t.Parallel()
		custom := schema.MustNew(schema.Field{
			Name:  "age",
			Rules: rules.RuleSet{Required: true, Min: rules.Float(18), Message: "adults only"},
		})
		res, err := custom.ValidateField("age", schema.Entity{"age": 12.0})
		require.NoError(t, err)
		assert.Equal(t, "adults only", res.Message)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		_, err := s.ValidateField("email", schema.Entity{"email": "x"})
		var unknown *schema.UnknownFieldError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, "email", unknown.Field)
		assert.Equal(t, `unknown field "email"`, err.Error())
	})
}

func TestSchema_Validate(t *testing.T) {
	t.Parallel()

	s := personSchema(t)

	t.Run("short name", func(t *testing.T) {
		t.Parallel()
		res := s.Validate(schema.Entity{"name": "Al", "age": 25.0})
		assert.False(t, res.OK)
		assert.Equal(t, map[string]string{
			"name": `length of "name" must be equal or greather than 3`,
		}, res.Errors)
	})

	t.Run("under age", func(t *testing.T) {
		t.Parallel()
		res := s.Validate(schema.Entity{"name": "Alice", "age": 17.0})
		assert.False(t, res.OK)
		assert.Equal(t, map[string]string{
			"age": `"age" must be equal or greather than 18`,
		}, res.Errors)
	})

	t.Run("valid entity", func(t *testing.T) {
		t.Parallel()
		res := s.Validate(schema.Entity{"name": "Alice", "age": 25.0})
		assert.True(t, res.OK)
		assert.Empty(t, res.Errors)
		assert.Equal(t, schema.Entity{"name": "Alice", "age": 25.0}, res.Data)
	})

	t.Run("collects every error in one pass", func(t *testing.T) {
		t.Parallel()
		res := s.Validate(schema.Entity{"name": "", "age": 99.0})
		assert.False(t, res.OK)
		assert.Len(t, res.Errors, 2)
		assert.True(t, res.HasError("name"))
		assert.True(t, res.HasError("age"))
		assert.Equal(t, schema.Entity{"name": "", "age": 99.0}, res.Data, "invalid values are still copied")
	})

	t.Run("evaluates fields missing from the entity", func(t *testing.T) {
		t.Parallel()
		res := s.Validate(schema.Entity{"name": "Alice"})
		assert.False(t, res.OK)
		assert.Equal(t, `"age" is required!`, res.Errors["age"])
		assert.Len(t, res.Data, s.Len())
		v, present := res.Data["age"]
		assert.True(t, present)
		assert.Nil(t, v)
	})

	t.Run("ignores undeclared keys", func(t *testing.T) {
		t.Parallel()
		res := s.Validate(schema.Entity{"name": "Alice", "age": 20.0, "extra": true})
		assert.True(t, res.OK)
		assert.NotContains(t, res.Data, "extra")
	})

	t.Run("errors hold exactly the invalid fields", func(t *testing.T) {
		t.Parallel()
		wide := schema.MustNew(
			schema.Field{Name: "a", Rules: rules.RuleSet{Required: true}},
			schema.Field{Name: "b"},
			schema.Field{Name: "c", Rules: rules.RuleSet{MaxLength: rules.Int(2)}},
			schema.Field{Name: "d", Rules: rules.RuleSet{Email: true}},
		)
		entity := schema.Entity{"a": "x", "b": nil, "c": "long", "d": "nope", "z": 1}
		res := wide.Validate(entity)
		assert.ElementsMatch(t, []string{"c", "d"}, keys(res.Errors))
		assert.Len(t, res.Data, 4)
		assert.Equal(t, len(res.Errors) == 0, res.OK)
	})
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
