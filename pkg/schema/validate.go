package schema

import "github.com/dmitrymomot/validify/pkg/rules"

// FieldResult is the outcome of validating a single field.
type FieldResult struct {
	OK      bool
	Message string
	Rule    rules.Rule
}

// Result is the outcome of validating a whole entity.
type Result struct {
	OK bool
	// Data holds one entry per schema field, valid or not. Fields absent from
	// the entity map to nil.
	Data Entity
	// Errors holds the message of every invalid field.
	Errors map[string]string
}

// HasError reports whether field failed.
func (r Result) HasError(field string) bool {
	_, ok := r.Errors[field]
	return ok
}

// ValidateField evaluates the rules of name against entity[name].
func (s *Schema) ValidateField(name string, entity Entity) (FieldResult, error) {
	rs, ok := s.fields[name]
	if !ok {
		return FieldResult{}, NewUnknownFieldError(name)
	}

	out := rs.Evaluate(name, entity[name])
	return FieldResult{
		OK:      out.Valid,
		Message: rs.FailureMessage(out),
		Rule:    out.Rule,
	}, nil
}

// Validate evaluates every schema field, in declaration order, against
// entity. Fields absent from the entity are evaluated as empty; entity keys
// the schema does not declare are ignored.
func (s *Schema) Validate(entity Entity) Result {
	res := Result{
		OK:     true,
		Data:   make(Entity, len(s.order)),
		Errors: make(map[string]string),
	}

	for _, name := range s.order {
		rs := s.fields[name]
		value := entity[name]

		out := rs.Evaluate(name, value)
		if !out.Valid {
			res.Errors[name] = rs.FailureMessage(out)
			res.OK = false
		}
		res.Data[name] = value
	}

	return res
}
