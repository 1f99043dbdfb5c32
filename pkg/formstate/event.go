package formstate

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/validify/pkg/rules"
)

// Kind selects how an event value is turned into a field value.
type Kind string

const (
	// KindText stores the value as given.
	KindText Kind = "text"
	// KindNumber parses text input into a float64.
	KindNumber Kind = "number"
	// KindCheckbox stores the Checked flag as a boolean.
	KindCheckbox Kind = "checkbox"
	// KindList adds (Checked) or removes the option Value in a string set.
	KindList Kind = "list"
)

// Event is a UI change or blur notification.
type Event struct {
	Name    string `json:"name"`
	Value   any    `json:"value"`
	Kind    Kind   `json:"kind"`
	Checked bool   `json:"checked"`
}

// ParseNumber converts raw numeric input. Blank text is 0, text that is not
// a finite number yields nil so required checks report it as missing.
func ParseNumber(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return float64(0)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return f
	case bool:
		if t {
			return float64(1)
		}
		return float64(0)
	}
	if n, ok := rules.ToNumber(v); ok {
		return n
	}
	return nil
}

// toggle returns the set value after switching option on or off.
func toggle(current any, option string, on bool) []string {
	list := toStrings(current)
	idx := slices.Index(list, option)
	switch {
	case on && idx < 0:
		list = append(list, option)
	case !on && idx >= 0:
		list = slices.Delete(list, idx, idx+1)
	}
	return list
}

// toStrings normalises a list value; JSON round trips turn []string into []any.
func toStrings(v any) []string {
	switch t := v.(type) {
	case []string:
		return append([]string{}, t...)
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, rules.Stringify(item))
		}
		return out
	case nil:
		return []string{}
	case string:
		if t == "" {
			return []string{}
		}
		return []string{t}
	default:
		return []string{rules.Stringify(t)}
	}
}
