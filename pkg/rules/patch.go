package rules

import "regexp"

// Patch is a partial RuleSet. Nil attributes are left as they are when the
// patch is applied.
type Patch struct {
	Type      *Type
	Required  *bool
	Email     *bool
	Max       *float64
	Min       *float64
	MaxLength *int
	MinLength *int
	Pattern   *regexp.Regexp
	Message   *string
}

// IsZero reports whether the patch sets no attribute.
func (p Patch) IsZero() bool {
	return p.Type == nil && p.Required == nil && p.Email == nil &&
		p.Max == nil && p.Min == nil &&
		p.MaxLength == nil && p.MinLength == nil &&
		p.Pattern == nil && p.Message == nil
}

// Apply returns a copy of r with every attribute set in p overwritten.
// Values are copied, so later changes to the patch do not leak into the
// result.
func (r RuleSet) Apply(p Patch) RuleSet {
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Required != nil {
		r.Required = *p.Required
	}
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.Max != nil {
		r.Max = Float(*p.Max)
	}
	if p.Min != nil {
		r.Min = Float(*p.Min)
	}
	if p.MaxLength != nil {
		r.MaxLength = Int(*p.MaxLength)
	}
	if p.MinLength != nil {
		r.MinLength = Int(*p.MinLength)
	}
	if p.Pattern != nil {
		r.Pattern = p.Pattern
	}
	if p.Message != nil {
		r.Message = *p.Message
	}
	return r
}

// Merge combines two patches attribute by attribute; next wins where both
// set the same attribute.
func (p Patch) Merge(next Patch) Patch {
	if next.Type != nil {
		t := *next.Type
		p.Type = &t
	}
	if next.Required != nil {
		p.Required = Bool(*next.Required)
	}
	if next.Email != nil {
		p.Email = Bool(*next.Email)
	}
	if next.Max != nil {
		p.Max = Float(*next.Max)
	}
	if next.Min != nil {
		p.Min = Float(*next.Min)
	}
	if next.MaxLength != nil {
		p.MaxLength = Int(*next.MaxLength)
	}
	if next.MinLength != nil {
		p.MinLength = Int(*next.MinLength)
	}
	if next.Pattern != nil {
		p.Pattern = next.Pattern
	}
	if next.Message != nil {
		p.Message = String(*next.Message)
	}
	return p
}
