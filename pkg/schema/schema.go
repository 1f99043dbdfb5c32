package schema

import (
	"fmt"

	"github.com/dmitrymomot/validify/pkg/rules"
)

// Entity is a plain mapping from field name to raw value.
type Entity map[string]any

// Field declares one schema entry.
type Field struct {
	Name  string
	Rules rules.RuleSet
}

// Schema is an ordered, immutable mapping from field name to rule set.
type Schema struct {
	order  []string
	fields map[string]rules.RuleSet
}

// New builds a schema from fields, keeping their order.
func New(fields ...Field) (*Schema, error) {
	s := &Schema{
		order:  make([]string, 0, len(fields)),
		fields: make(map[string]rules.RuleSet, len(fields)),
	}

	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("field[%d]: %w", i, ErrEmptyFieldName)
		}
		if _, exists := s.fields[f.Name]; exists {
			return nil, fmt.Errorf("field %q: %w", f.Name, ErrDuplicateField)
		}
		s.order = append(s.order, f.Name)
		s.fields[f.Name] = f.Rules
	}

	return s, nil
}

// MustNew is like New but panics on an invalid declaration.
func MustNew(fields ...Field) *Schema {
	s, err := New(fields...)
	if err != nil {
		panic(fmt.Sprintf("failed to create schema: %v", err))
	}
	return s
}

// Fields returns the field names in declaration order.
func (s *Schema) Fields() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	return len(s.order)
}

// Has reports whether name is declared.
func (s *Schema) Has(name string) bool {
	_, ok := s.fields[name]
	return ok
}

// Rules returns the rule set of name.
func (s *Schema) Rules(name string) (rules.RuleSet, error) {
	rs, ok := s.fields[name]
	if !ok {
		return rules.RuleSet{}, NewUnknownFieldError(name)
	}
	return rs, nil
}
