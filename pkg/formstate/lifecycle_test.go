package formstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle(t *testing.T) {
	t.Parallel()

	notEmpty := func(_ string, v any) bool { return v != "" }
	l := newLifecycle(notEmpty)

	tests := []struct {
		name  string
		from  phase
		on    trigger
		value any
		want  phase
		err   error
	}{
		{"change keeps untouched", phaseUntouched, onChange, "x", phaseUntouched, nil},
		{"change keeps touched", phaseTouched, onChange, "", phaseTouched, nil},
		{"blur touches", phaseUntouched, onBlur, "x", phaseTouched, nil},
		{"blur on empty rejected", phaseUntouched, onBlur, "", phaseUntouched, ErrTransitionRejected},
		{"sweep touches", phaseUntouched, onSweep, "", phaseTouched, nil},
		{"reset untouches", phaseTouched, onReset, "x", phaseUntouched, nil},
		{"unknown trigger", phaseTouched, trigger("paste"), "x", phaseTouched, ErrNoTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := l.fire(tt.from, tt.on, "f", tt.value)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPhaseOf(t *testing.T) {
	t.Parallel()
	assert.Equal(t, phaseTouched, phaseOf(FieldState{Touched: true}))
	assert.Equal(t, phaseUntouched, phaseOf(FieldState{}))
}
