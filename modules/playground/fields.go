package playground

import (
	"bytes"
	_ "embed"
	"regexp"

	"github.com/dmitrymomot/validify/pkg/derive"
	"github.com/dmitrymomot/validify/pkg/formstate"
	"github.com/dmitrymomot/validify/pkg/rules"
	"github.com/dmitrymomot/validify/pkg/schema"
)

//go:embed derive.yaml
var deriveRules []byte

// Field describes one input of the demo form.
type Field struct {
	Name    string
	Label   string
	Kind    formstate.Kind
	Input   string // html input type, "select" or "checkboxes"
	Options []string
	Rules   rules.RuleSet
	Trigger bool
}

// DemoFields returns the inputs of the demo form in display order.
func DemoFields() []Field {
	return []Field{
		{
			Name: "name", Label: "Name", Kind: formstate.KindText, Input: "text",
			Rules: rules.RuleSet{Type: rules.TypeString, Required: true, MinLength: rules.Int(3), MaxLength: rules.Int(10)},
		},
		{
			Name: "surname", Label: "Surname", Kind: formstate.KindText, Input: "text",
			Rules: rules.RuleSet{Type: rules.TypeString, Required: true, MinLength: rules.Int(3), MaxLength: rules.Int(10)},
		},
		{
			Name: "email", Label: "Email", Kind: formstate.KindText, Input: "email",
			Rules: rules.RuleSet{Type: rules.TypeString, Email: true},
		},
		{
			Name: "age", Label: "Age", Kind: formstate.KindNumber, Input: "number",
			Rules: rules.RuleSet{Type: rules.TypeNumber, Required: true, Min: rules.Float(18), Max: rules.Float(30)},
		},
		{
			Name: "country", Label: "Country", Kind: formstate.KindText, Input: "select",
			Options: []string{"DE", "FR", "UA", "US"},
			Rules:   rules.RuleSet{Type: rules.TypeString, Required: true, Pattern: regexp.MustCompile(`^[A-Z]{2}$`)},
			Trigger: true,
		},
		{
			Name: "interests", Label: "Interests", Kind: formstate.KindList, Input: "checkboxes",
			Options: []string{"go", "rust", "zig", "elixir"},
			Rules:   rules.RuleSet{Type: rules.TypeArray, MaxLength: rules.Int(3), Message: "pick up to three"},
		},
	}
}

// definition is the compiled demo form.
type definition struct {
	fields  []Field
	byName  map[string]Field
	schema  *schema.Schema
	deriver *derive.Deriver
}

func newDefinition(fields []Field, deriveSrc []byte) (*definition, error) {
	def := &definition{fields: fields, byName: make(map[string]Field, len(fields))}

	decl := make([]schema.Field, 0, len(fields))
	for _, f := range fields {
		def.byName[f.Name] = f
		decl = append(decl, schema.Field{Name: f.Name, Rules: f.Rules})
	}

	s, err := schema.New(decl...)
	if err != nil {
		return nil, err
	}
	d, err := derive.Load(bytes.NewReader(deriveSrc))
	if err != nil {
		return nil, err
	}
	if err := d.Check(s); err != nil {
		return nil, err
	}

	def.schema = s
	def.deriver = d
	return def, nil
}

func (d *definition) formOptions() []formstate.Option {
	var opts []formstate.Option
	for _, f := range d.fields {
		if f.Trigger {
			opts = append(opts, formstate.WithTrigger(f.Name, d.deriver.Derive))
		}
	}
	return opts
}
