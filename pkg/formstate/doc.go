// Package formstate tracks the per-field state of a form session and
// reconciles user edits, touched status and validation results against a
// schema.
//
// Each field holds a value, an error message, a touched flag and an ok flag.
// A field starts untouched and ok; it becomes touched when it is blurred with
// a value or when a full validation sweeps the form, and only Reset makes it
// untouched again. Edits to an untouched field never show an error, edits to
// a touched field are validated immediately.
//
// The form-level OK flag is only written by Validate. Incremental edits leave
// it alone, so a submit gate cannot flip to open without an explicit
// validation pass.
//
// # Entry points
//
// Structured events come from UI bindings:
//
//	form.HandleChange(formstate.Event{Name: "age", Value: "25", Kind: formstate.KindNumber})
//	form.HandleBlur(formstate.Event{Name: "age", Value: "25", Kind: formstate.KindNumber})
//
// Programmatic callers pass already typed values:
//
//	form.Change("age", 25.0)
//	form.Blur("age", 25.0)
//	form.Toggle("interests", "go", true)
//
// # Dynamic schemas
//
// WithTrigger registers a Deriver for a field. When that field is committed
// (blurred, or toggled for list fields) the deriver receives a snapshot of
// the form data and returns a schema patch; the session's active schema is
// rebuilt with it before any later validation. The shared base schema is never
// modified.
//
// A Form serialises its own operations with a mutex, so one session may be
// driven from several goroutines.
package formstate
