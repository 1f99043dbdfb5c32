package rules

import "regexp"

// Type is a loose value type hint. It only decides the initial value of a
// field; evaluation never coerces values.
type Type string

const (
	TypeUnknown Type = ""
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
	TypeArray   Type = "array"
)

// Zero returns the initial value for a field of this type.
func (t Type) Zero() any {
	switch t {
	case TypeString:
		return ""
	case TypeNumber:
		return float64(0)
	case TypeBoolean:
		return false
	case TypeArray:
		return []string{}
	default:
		return nil
	}
}

// RuleSet is the validation configuration of one field.
type RuleSet struct {
	Type      Type
	Required  bool
	Email     bool
	Max       *float64
	Min       *float64
	MaxLength *int
	MinLength *int
	Pattern   *regexp.Regexp
	// Message replaces the default message of any failed check.
	Message string
}

// IsZero reports whether no constraint is configured.
func (r RuleSet) IsZero() bool {
	return !r.Required && !r.Email &&
		r.Max == nil && r.Min == nil &&
		r.MaxLength == nil && r.MinLength == nil &&
		r.Pattern == nil
}

// FailureMessage returns the message to show for the outcome: empty when the
// outcome is valid, the custom message when one is configured, otherwise the
// default message of the failed rule.
func (r RuleSet) FailureMessage(o Outcome) string {
	if o.Valid {
		return ""
	}
	if r.Message != "" {
		return r.Message
	}
	return o.DefaultMessage
}

// Float returns a pointer to v, for optional numeric bounds.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for optional length bounds.
func Int(v int) *int { return &v }

// Bool returns a pointer to v, for patches.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v, for patches.
func String(v string) *string { return &v }
