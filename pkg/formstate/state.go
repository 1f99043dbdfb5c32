package formstate

import (
	"github.com/dmitrymomot/validify/pkg/schema"
)

// FieldState is the UI-facing record of one field.
type FieldState struct {
	Value   any    `json:"value"`
	Error   string `json:"error"`
	Touched bool   `json:"touched"`
	OK      bool   `json:"ok"`
}

// FormState is the UI-facing record of a whole form.
type FormState struct {
	// OK reflects the most recent full validation only.
	OK   bool                  `json:"ok"`
	Data map[string]FieldState `json:"data"`
}

// Init builds the pristine state of s: every field untouched and ok, with the
// initial value when one is supplied or the zero value of its declared type.
// The form-level OK is false until a validation passes.
func Init(s *schema.Schema, initial map[string]any) FormState {
	st := FormState{Data: make(map[string]FieldState, s.Len())}
	for _, name := range s.Fields() {
		value, ok := initial[name]
		if !ok {
			rs, _ := s.Rules(name)
			value = rs.Type.Zero()
		}
		st.Data[name] = FieldState{Value: cloneValue(value), OK: true}
	}
	return st
}

// Shape reshapes a full validation result into form state. Every field of s
// becomes touched; its ok flag reflects presence in the result's errors.
func Shape(s *schema.Schema, res schema.Result) FormState {
	st := FormState{
		OK:   res.OK,
		Data: make(map[string]FieldState, s.Len()),
	}
	for _, name := range s.Fields() {
		msg, failed := res.Errors[name]
		st.Data[name] = FieldState{
			Value:   cloneValue(res.Data[name]),
			Error:   msg,
			Touched: true,
			OK:      !failed,
		}
	}
	return st
}

// Entity flattens the state into a plain field→value mapping.
func (s FormState) Entity() schema.Entity {
	e := make(schema.Entity, len(s.Data))
	for name, fs := range s.Data {
		e[name] = cloneValue(fs.Value)
	}
	return e
}

// Errors returns the messages of the fields currently showing an error.
func (s FormState) Errors() map[string]string {
	out := make(map[string]string)
	for name, fs := range s.Data {
		if fs.Error != "" {
			out[name] = fs.Error
		}
	}
	return out
}

// Clone returns a deep copy of the state.
func (s FormState) Clone() FormState {
	out := FormState{OK: s.OK}
	if s.Data != nil {
		out.Data = make(map[string]FieldState, len(s.Data))
		for name, fs := range s.Data {
			fs.Value = cloneValue(fs.Value)
			out.Data[name] = fs
		}
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case []string:
		return append([]string{}, t...)
	case []any:
		return append([]any{}, t...)
	default:
		return v
	}
}
