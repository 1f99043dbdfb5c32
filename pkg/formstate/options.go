package formstate

import (
	"log/slog"
	"maps"

	"github.com/dmitrymomot/validify/pkg/schema"
)

// Deriver computes a schema patch from a snapshot of the form data.
type Deriver func(data schema.Entity) (schema.Patch, error)

// Option configures a Form.
type Option func(*Form)

// WithInitial supplies initial values. They are used by New and Reset in
// place of the declared type's zero value. Keys outside the schema are
// ignored.
func WithInitial(values map[string]any) Option {
	return func(f *Form) {
		if len(values) == 0 {
			return
		}
		if f.initial == nil {
			f.initial = make(map[string]any, len(values))
		}
		maps.Copy(f.initial, values)
	}
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithTrigger makes field a trigger: committing it re-derives the active
// schema through d. Nil derivers are ignored.
func WithTrigger(field string, d Deriver) Option {
	return func(f *Form) {
		if d == nil {
			return
		}
		if _, exists := f.triggers[field]; !exists {
			f.triggerOrder = append(f.triggerOrder, field)
		}
		f.triggers[field] = d
	}
}

// WithValidateEmptyOnBlur makes blur validate the listed fields even when
// their value is empty. By default blurring an empty field is a no-op.
func WithValidateEmptyOnBlur(fields ...string) Option {
	return func(f *Form) {
		for _, name := range fields {
			f.emptyBlur[name] = true
		}
	}
}
