package formstate

import "fmt"

// phase is the lifecycle position of a field.
type phase string

const (
	phaseUntouched phase = "untouched"
	phaseTouched   phase = "touched"
)

// trigger is what happened to a field.
type trigger string

const (
	onChange trigger = "change"
	onBlur   trigger = "blur"
	onSweep  trigger = "sweep"
	onReset  trigger = "reset"
)

// guard decides whether a transition may proceed for the given field value.
type guard func(field string, value any) bool

type transition struct {
	to     phase
	guards []guard
}

// lifecycle is the per-field transition table: [from][trigger][]transition.
// It holds no per-field state; the current phase is derived from the touched
// flag, so a single table serves every field of a form.
type lifecycle struct {
	transitions map[phase]map[trigger][]transition
}

func newLifecycle(blurGuard guard) *lifecycle {
	l := &lifecycle{transitions: make(map[phase]map[trigger][]transition)}

	for _, from := range []phase{phaseUntouched, phaseTouched} {
		// Typing never changes touched status.
		l.add(from, from, onChange)
		l.add(from, phaseTouched, onBlur, blurGuard)
		l.add(from, phaseTouched, onSweep)
		l.add(from, phaseUntouched, onReset)
	}

	return l
}

func (l *lifecycle) add(from, to phase, t trigger, guards ...guard) {
	if _, ok := l.transitions[from]; !ok {
		l.transitions[from] = make(map[trigger][]transition)
	}
	var gs []guard
	for _, g := range guards {
		if g != nil {
			gs = append(gs, g)
		}
	}
	// First transition with passing guards wins.
	l.transitions[from][t] = append(l.transitions[from][t], transition{to: to, guards: gs})
}

// fire returns the phase reached from `from` on trigger t.
func (l *lifecycle) fire(from phase, t trigger, field string, value any) (phase, error) {
	candidates := l.transitions[from][t]
	if len(candidates) == 0 {
		return from, fmt.Errorf("%w: %s on %s", ErrNoTransition, from, t)
	}

	for _, tr := range candidates {
		passed := true
		for _, g := range tr.guards {
			if !g(field, value) {
				passed = false
				break
			}
		}
		if passed {
			return tr.to, nil
		}
	}

	return from, fmt.Errorf("%w: %s on %s for %q", ErrTransitionRejected, from, t, field)
}

func phaseOf(fs FieldState) phase {
	if fs.Touched {
		return phaseTouched
	}
	return phaseUntouched
}
