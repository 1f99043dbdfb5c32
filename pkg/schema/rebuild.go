package schema

import (
	"maps"

	"github.com/dmitrymomot/validify/pkg/rules"
)

// Patch is a partial schema: for each named field, the rule attributes to
// overwrite.
type Patch map[string]rules.Patch

// Merge combines two patches field by field; next wins on attributes both
// set. Neither input is modified.
func (p Patch) Merge(next Patch) Patch {
	out := make(Patch, len(p)+len(next))
	maps.Copy(out, p)
	for name, np := range next {
		out[name] = out[name].Merge(np)
	}
	return out
}

// Fields returns the patched field names in schema order. Names the schema
// does not declare are skipped.
func (p Patch) Fields(s *Schema) []string {
	var names []string
	for _, name := range s.order {
		if _, ok := p[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Rebuild returns a new schema with the patch merged into the matching rule
// sets. Attributes the patch leaves unset are preserved. The receiver is not
// modified. Every patched field must already be declared.
func (s *Schema) Rebuild(p Patch) (*Schema, error) {
	for name := range p {
		if _, ok := s.fields[name]; !ok {
			return nil, NewUnknownFieldError(name)
		}
	}

	out := &Schema{
		order:  s.order,
		fields: maps.Clone(s.fields),
	}
	for name, fp := range p {
		out.fields[name] = out.fields[name].Apply(fp)
	}
	return out, nil
}
