// Package rules holds the validation configuration of a single form field and
// the predicate that evaluates it against a candidate value.
//
// A RuleSet enumerates the recognised constraints explicitly (required, email,
// numeric bounds, length bounds, pattern) together with an optional custom
// message and a type tag used to pick the field's initial value. Optional
// constraints are pointers, so a bound of zero is a real bound and an unset
// bound is skipped.
//
// # Evaluation order
//
// Evaluate runs the checks in a fixed order and stops at the first failure:
//
//  1. empty value on a non-required field: valid, nothing else is checked
//  2. empty value on a required field: "required"
//  3. email shape
//  4. max, then min (numeric values only)
//  5. maxLength, then minLength (strings and sequences)
//  6. pattern
//
// Empty means nil, "", a numeric zero or false. A sequence is never empty,
// so lists are bounded with minLength rather than required.
//
// # Messages
//
// Every failure carries a fixed default message, a translation key and the
// values used to build the message, the same shape the rest of the toolkit
// uses for field errors. A RuleSet.Message, when set, replaces the default
// message for every rule kind of that field:
//
//	age := rules.RuleSet{Required: true, Min: rules.Float(18), Max: rules.Float(30)}
//	out := age.Evaluate("age", 17.0)
//	// out.Valid == false
//	// out.DefaultMessage == `"age" must be equal or greather than 18`
//	msg := age.FailureMessage(out)
//
// # Patches
//
// Patch mirrors RuleSet with every attribute optional. RuleSet.Apply copies
// the attributes present in a patch over the rule set and leaves the others
// untouched; Patch.Merge combines two patches with the later one winning, so
// applying P1 then P2 equals applying P1.Merge(P2).
package rules
