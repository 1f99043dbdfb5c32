package derive_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validify/pkg/derive"
	"github.com/dmitrymomot/validify/pkg/formstate"
	"github.com/dmitrymomot/validify/pkg/rules"
	"github.com/dmitrymomot/validify/pkg/schema"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	t.Run("skips empty fields", func(t *testing.T) {
		t.Parallel()
		d, err := derive.Compile(map[string]derive.Exprs{
			"b":   {Required: "true"},
			"a":   {Min: "1"},
			"nil": {},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, d.Fields())
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()
		_, err := derive.Compile(map[string]derive.Exprs{"age": {Min: "country =="}})
		require.ErrorIs(t, err, derive.ErrCompile)
		assert.Contains(t, err.Error(), "age.min")
	})

	t.Run("wrong literal type", func(t *testing.T) {
		t.Parallel()
		_, err := derive.Compile(map[string]derive.Exprs{"age": {Required: `"yes"`}})
		assert.ErrorIs(t, err, derive.ErrCompile)
	})

	t.Run("reserved field name", func(t *testing.T) {
		t.Parallel()
		_, err := derive.Compile(map[string]derive.Exprs{derive.DataKey: {Required: "true"}})
		assert.ErrorIs(t, err, derive.ErrReservedField)
	})

	t.Run("MustCompile panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			derive.MustCompile(map[string]derive.Exprs{"age": {Min: "("}})
		})
	})
}

func TestDeriver_Derive(t *testing.T) {
	t.Parallel()

	d := derive.MustCompile(map[string]derive.Exprs{
		"age": {
			Min:     `country == "US" ? 21 : 18`,
			Max:     `99.5`,
			Message: `country == "US" ? "must be 21+" : ""`,
		},
		"company": {
			Required:  `len(data.interests ?? []) > 1`,
			MaxLength: `country == "US" ? 40 : 20`,
			Pattern:   `"^[A-Z]"`,
			Email:     `false`,
		},
	})

	patch, err := d.Derive(schema.Entity{"country": "US", "interests": []string{"go", "rust"}})
	require.NoError(t, err)

	age := patch["age"]
	require.NotNil(t, age.Min)
	assert.Equal(t, 21.0, *age.Min)
	assert.Equal(t, 99.5, *age.Max)
	assert.Equal(t, "must be 21+", *age.Message)

	company := patch["company"]
	assert.True(t, *company.Required)
	assert.False(t, *company.Email)
	assert.Equal(t, 40, *company.MaxLength)
	assert.Equal(t, "^[A-Z]", company.Pattern.String())
	assert.Nil(t, company.MinLength)

	patch, err = d.Derive(schema.Entity{"country": "DE"})
	require.NoError(t, err)
	assert.Equal(t, 18.0, *patch["age"].Min)
	assert.False(t, *patch["company"].Required)
}

func TestDeriver_DeriveErrors(t *testing.T) {
	t.Parallel()

	t.Run("invalid pattern", func(t *testing.T) {
		t.Parallel()
		d := derive.MustCompile(map[string]derive.Exprs{"name": {Pattern: `"(["`}})
		_, err := d.Derive(schema.Entity{})
		assert.ErrorIs(t, err, derive.ErrEvaluate)
	})

	t.Run("runtime type mismatch", func(t *testing.T) {
		t.Parallel()
		d := derive.MustCompile(map[string]derive.Exprs{"age": {Min: `limit`}})
		_, err := d.Derive(schema.Entity{"limit": "not a number"})
		assert.ErrorIs(t, err, derive.ErrEvaluate)
	})
}

func TestDeriver_Check(t *testing.T) {
	t.Parallel()

	s := schema.MustNew(schema.Field{Name: "age"})
	assert.NoError(t, derive.MustCompile(map[string]derive.Exprs{"age": {Min: "1"}}).Check(s))

	err := derive.MustCompile(map[string]derive.Exprs{"ghost": {Min: "1"}}).Check(s)
	assert.ErrorIs(t, err, schema.ErrUnknownField)

	shadowed := schema.MustNew(schema.Field{Name: "age"}, schema.Field{Name: "data"})
	err = derive.MustCompile(map[string]derive.Exprs{"age": {Min: "1"}}).Check(shadowed)
	assert.ErrorIs(t, err, derive.ErrReservedField)
}

func TestDeriver_AsTrigger(t *testing.T) {
	t.Parallel()

	s := schema.MustNew(
		schema.Field{Name: "country", Rules: rules.RuleSet{Type: rules.TypeString}},
		schema.Field{Name: "age", Rules: rules.RuleSet{Type: rules.TypeNumber, Required: true, Min: rules.Float(18)}},
	)
	d := derive.MustCompile(map[string]derive.Exprs{"age": {Min: `country == "US" ? 21 : 18`}})

	f := formstate.MustNew(s, formstate.WithTrigger("country", d.Derive))
	require.NoError(t, f.Blur("country", "US"))
	require.NoError(t, f.Blur("age", 20))

	fs, err := f.Field("age")
	require.NoError(t, err)
	assert.Equal(t, `"age" must be equal or greather than 21`, fs.Error)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("yaml document", func(t *testing.T) {
		t.Parallel()
		d, err := derive.Load(strings.NewReader(`
age:
  min: 'country == "US" ? 21 : 18'
company:
  required: 'country != ""'
  max_length: '30'
`))
		require.NoError(t, err)
		assert.Equal(t, []string{"age", "company"}, d.Fields())

		patch, err := d.Derive(schema.Entity{"country": "US"})
		require.NoError(t, err)
		assert.Equal(t, 21.0, *patch["age"].Min)
		assert.Equal(t, 30, *patch["company"].MaxLength)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		d, err := derive.Load(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, d.Fields())
	})

	t.Run("unknown attribute", func(t *testing.T) {
		t.Parallel()
		_, err := derive.Load(strings.NewReader("age:\n  minimum: '1'\n"))
		assert.Error(t, err)
	})
}
