package rules

import "regexp"

// emailPattern accepts a local part of at least two word characters, an "@",
// a domain of at least three alphanumerics, a dot and a TLD of at least two
// letters. It is intentionally unanchored.
var emailPattern = regexp.MustCompile(`\w{2,}@[A-Za-z0-9]{3,}\.[A-Za-z]{2,}`)

// Evaluate checks value against the rule set. Checks run in a fixed order and
// the first failure is returned; a valid outcome has an empty message.
func (r RuleSet) Evaluate(field string, value any) Outcome {
	if IsEmpty(value) {
		if r.Required {
			return requiredFailure(field)
		}
		return valid()
	}

	if r.Email && !emailPattern.MatchString(Stringify(value)) {
		return emailFailure(field)
	}

	if r.Max != nil || r.Min != nil {
		if n, ok := ToNumber(value); ok {
			if r.Max != nil && n > *r.Max {
				return maxFailure(field, *r.Max)
			}
			if r.Min != nil && n < *r.Min {
				return minFailure(field, *r.Min)
			}
		}
	}

	if r.MaxLength != nil || r.MinLength != nil {
		if l, ok := Length(value); ok {
			if r.MaxLength != nil && l > *r.MaxLength {
				return maxLengthFailure(field, *r.MaxLength)
			}
			if r.MinLength != nil && l < *r.MinLength {
				return minLengthFailure(field, *r.MinLength)
			}
		}
	}

	if r.Pattern != nil && !r.Pattern.MatchString(Stringify(value)) {
		return patternFailure(field, r.Pattern.String())
	}

	return valid()
}
