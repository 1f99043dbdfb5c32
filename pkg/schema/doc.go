// Package schema maps field names to rule sets and evaluates whole entities or
// single fields against them.
//
// A Schema keeps its fields in declaration order. Validate walks every field
// in that order, never stops at the first failure, and reports all errors at
// once so a form can surface them together after a submit attempt.
//
//	s := schema.MustNew(
//	    schema.Field{Name: "name", Rules: rules.RuleSet{Required: true, MinLength: rules.Int(3), MaxLength: rules.Int(10)}},
//	    schema.Field{Name: "age", Rules: rules.RuleSet{Required: true, Min: rules.Float(18), Max: rules.Float(30)}},
//	)
//	res := s.Validate(schema.Entity{"name": "Al", "age": 25.0})
//	// res.OK == false
//	// res.Errors["name"] == `length of "name" must be equal or greather than 3`
//
// # Rebuilding
//
// A Schema value is never modified after construction. Rebuild merges a Patch
// into a copy and returns it; holders of the previous value keep the previous
// rules. That makes a Schema safe to share between form sessions and
// goroutines, while each session decides which rebuilt value it uses.
//
// Referencing a field the schema does not declare is a programming error and
// is reported as *UnknownFieldError.
package schema
