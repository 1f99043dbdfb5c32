package rules

import "fmt"

// Rule names the check that produced an outcome.
type Rule string

const (
	RuleNone      Rule = ""
	RuleRequired  Rule = "required"
	RuleEmail     Rule = "email"
	RuleMax       Rule = "max"
	RuleMin       Rule = "min"
	RuleMaxLength Rule = "max_length"
	RuleMinLength Rule = "min_length"
	RulePattern   Rule = "pattern"
)

// Outcome is the result of evaluating a RuleSet against one value.
type Outcome struct {
	Valid             bool
	Rule              Rule
	DefaultMessage    string
	TranslationKey    string
	TranslationValues map[string]any
}

func valid() Outcome {
	return Outcome{Valid: true}
}

func requiredFailure(field string) Outcome {
	return Outcome{
		Rule:           RuleRequired,
		DefaultMessage: fmt.Sprintf("%q is required!", field),
		TranslationKey: "validation.required",
		TranslationValues: map[string]any{
			"field": field,
		},
	}
}

func emailFailure(field string) Outcome {
	return Outcome{
		Rule:           RuleEmail,
		DefaultMessage: fmt.Sprintf("%q is not a valid email address", field),
		TranslationKey: "validation.email",
		TranslationValues: map[string]any{
			"field": field,
		},
	}
}

func maxFailure(field string, max float64) Outcome {
	return Outcome{
		Rule:           RuleMax,
		DefaultMessage: fmt.Sprintf("%q must be equal or lower than %s", field, formatNumber(max)),
		TranslationKey: "validation.max",
		TranslationValues: map[string]any{
			"field": field,
			"max":   max,
		},
	}
}

// The "greather" spelling is part of the published message text.
func minFailure(field string, min float64) Outcome {
	return Outcome{
		Rule:           RuleMin,
		DefaultMessage: fmt.Sprintf("%q must be equal or greather than %s", field, formatNumber(min)),
		TranslationKey: "validation.min",
		TranslationValues: map[string]any{
			"field": field,
			"min":   min,
		},
	}
}

func maxLengthFailure(field string, max int) Outcome {
	return Outcome{
		Rule:           RuleMaxLength,
		DefaultMessage: fmt.Sprintf("length of %q must be equal or lower than %d", field, max),
		TranslationKey: "validation.max_length",
		TranslationValues: map[string]any{
			"field": field,
			"max":   max,
		},
	}
}

func minLengthFailure(field string, min int) Outcome {
	return Outcome{
		Rule:           RuleMinLength,
		DefaultMessage: fmt.Sprintf("length of %q must be equal or greather than %d", field, min),
		TranslationKey: "validation.min_length",
		TranslationValues: map[string]any{
			"field": field,
			"min":   min,
		},
	}
}

func patternFailure(field, pattern string) Outcome {
	return Outcome{
		Rule:           RulePattern,
		DefaultMessage: fmt.Sprintf("%q doesn't match /%s/", field, pattern),
		TranslationKey: "validation.pattern",
		TranslationValues: map[string]any{
			"field":   field,
			"pattern": pattern,
		},
	}
}
