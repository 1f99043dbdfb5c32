package derive

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/dmitrymomot/validify/pkg/rules"
	"github.com/dmitrymomot/validify/pkg/schema"
)

// Exprs holds the expression source of every derivable attribute of a field.
type Exprs struct {
	Required  string `json:"required,omitempty" yaml:"required,omitempty"`
	Email     string `json:"email,omitempty" yaml:"email,omitempty"`
	Max       string `json:"max,omitempty" yaml:"max,omitempty"`
	Min       string `json:"min,omitempty" yaml:"min,omitempty"`
	MaxLength string `json:"max_length,omitempty" yaml:"max_length,omitempty"`
	MinLength string `json:"min_length,omitempty" yaml:"min_length,omitempty"`
	Pattern   string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Message   string `json:"message,omitempty" yaml:"message,omitempty"`
}

type attribute string

const (
	attrRequired  attribute = "required"
	attrEmail     attribute = "email"
	attrMax       attribute = "max"
	attrMin       attribute = "min"
	attrMaxLength attribute = "max_length"
	attrMinLength attribute = "min_length"
	attrPattern   attribute = "pattern"
	attrMessage   attribute = "message"
)

func (e Exprs) sources() map[attribute]string {
	return map[attribute]string{
		attrRequired:  e.Required,
		attrEmail:     e.Email,
		attrMax:       e.Max,
		attrMin:       e.Min,
		attrMaxLength: e.MaxLength,
		attrMinLength: e.MinLength,
		attrPattern:   e.Pattern,
		attrMessage:   e.Message,
	}
}

func resultOption(a attribute) expr.Option {
	switch a {
	case attrRequired, attrEmail:
		return expr.AsBool()
	case attrMax, attrMin:
		return expr.AsFloat64()
	case attrMaxLength, attrMinLength:
		return expr.AsInt()
	default:
		return expr.AsKind(reflect.String)
	}
}

// DataKey names the whole-form mapping in the expression environment. A form
// field with this name would be shadowed, so it is rejected.
const DataKey = "data"

type program struct {
	attr attribute
	prog *vm.Program
}

// Deriver evaluates compiled expressions into schema patches.
// It is safe for concurrent use.
type Deriver struct {
	fields   []string
	programs map[string][]program
	patterns *patternCache
}

// Compile compiles the expressions of every field. Fields whose sources are
// all empty are skipped.
func Compile(fields map[string]Exprs) (*Deriver, error) {
	d := &Deriver{
		programs: make(map[string][]program, len(fields)),
		patterns: newPatternCache(defaultPatternCacheSize),
	}

	for _, name := range slices.Sorted(maps.Keys(fields)) {
		if name == DataKey {
			return nil, fmt.Errorf("%w: %q", ErrReservedField, name)
		}
		srcs := fields[name].sources()
		var progs []program
		for _, attr := range slices.Sorted(maps.Keys(srcs)) {
			src := srcs[attr]
			if src == "" {
				continue
			}
			prog, err := expr.Compile(src, resultOption(attr))
			if err != nil {
				return nil, fmt.Errorf("%w: %s.%s: %w", ErrCompile, name, attr, err)
			}
			progs = append(progs, program{attr: attr, prog: prog})
		}
		if len(progs) > 0 {
			d.fields = append(d.fields, name)
			d.programs[name] = progs
		}
	}

	return d, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(fields map[string]Exprs) *Deriver {
	d, err := Compile(fields)
	if err != nil {
		panic(err)
	}
	return d
}

// Fields returns the derived field names, sorted.
func (d *Deriver) Fields() []string {
	return slices.Clone(d.fields)
}

// Check reports the first derived field that s does not declare. A schema
// declaring DataKey is rejected because expressions cannot reach that field.
func (d *Deriver) Check(s *schema.Schema) error {
	if s.Has(DataKey) {
		return fmt.Errorf("%w: %q", ErrReservedField, DataKey)
	}
	for _, name := range d.fields {
		if !s.Has(name) {
			return schema.NewUnknownFieldError(name)
		}
	}
	return nil
}

// Derive evaluates every expression against data and returns the patch.
func (d *Deriver) Derive(data schema.Entity) (schema.Patch, error) {
	env := make(map[string]any, len(data)+1)
	maps.Copy(env, data)
	env[DataKey] = map[string]any(data)

	patch := make(schema.Patch, len(d.fields))
	for _, name := range d.fields {
		var p rules.Patch
		for _, pr := range d.programs[name] {
			out, err := expr.Run(pr.prog, env)
			if err != nil {
				return nil, fmt.Errorf("%w: %s.%s: %w", ErrEvaluate, name, pr.attr, err)
			}
			if err := d.assign(&p, pr.attr, out); err != nil {
				return nil, fmt.Errorf("%w: %s.%s: %w", ErrEvaluate, name, pr.attr, err)
			}
		}
		patch[name] = p
	}
	return patch, nil
}

func (d *Deriver) assign(p *rules.Patch, attr attribute, out any) error {
	switch attr {
	case attrRequired, attrEmail:
		b, ok := out.(bool)
		if !ok {
			return fmt.Errorf("want bool, got %T", out)
		}
		if attr == attrRequired {
			p.Required = &b
		} else {
			p.Email = &b
		}
	case attrMax, attrMin:
		f, ok := out.(float64)
		if !ok {
			return fmt.Errorf("want number, got %T", out)
		}
		if attr == attrMax {
			p.Max = &f
		} else {
			p.Min = &f
		}
	case attrMaxLength, attrMinLength:
		n, ok := out.(int)
		if !ok {
			return fmt.Errorf("want int, got %T", out)
		}
		if attr == attrMaxLength {
			p.MaxLength = &n
		} else {
			p.MinLength = &n
		}
	case attrPattern:
		s, ok := out.(string)
		if !ok {
			return fmt.Errorf("want string, got %T", out)
		}
		re, err := d.patterns.compile(s)
		if err != nil {
			return err
		}
		p.Pattern = re
	case attrMessage:
		s, ok := out.(string)
		if !ok {
			return fmt.Errorf("want string, got %T", out)
		}
		p.Message = &s
	}
	return nil
}
