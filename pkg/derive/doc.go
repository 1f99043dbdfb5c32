// Package derive builds schema derivers from expr-lang expressions.
//
// Each derived rule attribute is an expression evaluated against the current
// form data. Field values are available by name and the whole snapshot as
// data, so no form field may be called data:
//
//	d, err := derive.Compile(map[string]derive.Exprs{
//	    "age": {Min: `country == "US" ? 21 : 18`},
//	    "company": {Required: `len(interests) > 2`},
//	})
//	form, err := formstate.New(s, formstate.WithTrigger("country", d.Derive))
//
// Required and Email must evaluate to booleans, Max and Min to numbers,
// MaxLength and MinLength to integers, Pattern and Message to strings. Empty
// sources leave the attribute as it is.
package derive
