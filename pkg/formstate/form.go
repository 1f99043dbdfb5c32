package formstate

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/validify/pkg/logger"
	"github.com/dmitrymomot/validify/pkg/rules"
	"github.com/dmitrymomot/validify/pkg/schema"
)

// Form is one form session: the field states plus the schema they are
// validated against.
type Form struct {
	mu sync.Mutex

	base   *schema.Schema
	active *schema.Schema
	state  FormState

	initial      map[string]any
	triggers     map[string]Deriver
	triggerOrder []string
	emptyBlur    map[string]bool

	life   *lifecycle
	logger *slog.Logger
}

// New starts a session for s. Trigger derivers run once against the initial
// data before New returns.
func New(s *schema.Schema, opts ...Option) (*Form, error) {
	if s == nil {
		return nil, errors.New("formstate: schema is nil")
	}

	f := &Form{
		base:      s,
		active:    s,
		triggers:  make(map[string]Deriver),
		emptyBlur: make(map[string]bool),
		logger:    logger.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}

	for _, name := range f.triggerOrder {
		if !s.Has(name) {
			return nil, fmt.Errorf("trigger: %w", schema.NewUnknownFieldError(name))
		}
	}
	for name := range f.emptyBlur {
		if !s.Has(name) {
			return nil, fmt.Errorf("validate on empty blur: %w", schema.NewUnknownFieldError(name))
		}
	}

	f.life = newLifecycle(f.blurGuard)
	f.state = Init(s, f.initial)

	if err := f.deriveAll(); err != nil {
		return nil, err
	}
	return f, nil
}

// MustNew is like New but panics on error.
func MustNew(s *schema.Schema, opts ...Option) *Form {
	f, err := New(s, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create form: %v", err))
	}
	return f
}

// State returns a copy of the current form state.
func (f *Form) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Clone()
}

// Field returns a copy of the state of name.
func (f *Form) Field(name string) (FieldState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fs, ok := f.state.Data[name]
	if !ok {
		return FieldState{}, schema.NewUnknownFieldError(name)
	}
	fs.Value = cloneValue(fs.Value)
	return fs, nil
}

// OK reports the outcome of the most recent full validation.
func (f *Form) OK() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.OK
}

// Schema returns the schema currently used for validation.
func (f *Form) Schema() *schema.Schema {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

// Fields returns the field names in schema order.
func (f *Form) Fields() []string {
	return f.base.Fields()
}

// Change records a new value typed by the user. An untouched field stores it
// without validating; a touched field is validated right away.
func (f *Form) Change(name string, value any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.change(name, value)
}

// Blur commits value for name: the field is validated and becomes touched.
// Blurring an empty field is a no-op unless the field was registered with
// WithValidateEmptyOnBlur. Committing a trigger field rebuilds the schema.
func (f *Form) Blur(name string, value any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.blur(name, value, value)
}

// Toggle switches option on or off in the list value of name and then
// follows the same touched-state branching as Change. Toggling a trigger
// field rebuilds the schema.
func (f *Form) Toggle(name, option string, on bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	fs, ok := f.state.Data[name]
	if !ok {
		return schema.NewUnknownFieldError(name)
	}
	if err := f.change(name, toggle(fs.Value, option, on)); err != nil {
		return err
	}
	return f.derive(name)
}

// HandleChange applies a change event.
func (f *Form) HandleChange(ev Event) error {
	if ev.Name == "" {
		return fmt.Errorf("%w: missing field name", ErrInvalidEvent)
	}

	switch ev.Kind {
	case KindText, "":
		return f.Change(ev.Name, ev.Value)
	case KindNumber:
		return f.Change(ev.Name, ParseNumber(ev.Value))
	case KindCheckbox:
		return f.Change(ev.Name, ev.Checked)
	case KindList:
		return f.Toggle(ev.Name, rules.Stringify(ev.Value), ev.Checked)
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidEvent, ev.Kind)
	}
}

// HandleBlur applies a blur event. The emptiness guard looks at the raw
// input, before numeric parsing.
func (f *Form) HandleBlur(ev Event) error {
	if ev.Name == "" {
		return fmt.Errorf("%w: missing field name", ErrInvalidEvent)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	switch ev.Kind {
	case KindText, "":
		return f.blur(ev.Name, ev.Value, ev.Value)
	case KindNumber:
		return f.blur(ev.Name, ev.Value, ParseNumber(ev.Value))
	case KindCheckbox:
		return f.blur(ev.Name, ev.Checked, ev.Checked)
	case KindList:
		fs, ok := f.state.Data[ev.Name]
		if !ok {
			return schema.NewUnknownFieldError(ev.Name)
		}
		return f.blur(ev.Name, fs.Value, fs.Value)
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidEvent, ev.Kind)
	}
}

// Validate runs a full validation of the current values, touches every
// field and sets the form-level OK flag. It is the only operation that
// writes that flag.
func (f *Form) Validate() schema.Result {
	f.mu.Lock()
	defer f.mu.Unlock()

	res := f.active.Validate(f.state.Entity())
	next := Shape(f.active, res)
	for name, fs := range next.Data {
		to, err := f.life.fire(phaseOf(f.state.Data[name]), onSweep, name, fs.Value)
		if err == nil {
			fs.Touched = to == phaseTouched
			next.Data[name] = fs
		}
	}
	f.state = next

	f.logger.Debug("form validated",
		slog.Bool("ok", res.OK),
		slog.Int("errors", len(res.Errors)),
	)
	return res
}

// Reset restores every field to its initial value, untouched and ok, sets
// the form-level OK to false and goes back to the base schema before
// re-deriving it from the initial data.
func (f *Form) Reset() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.active = f.base
	f.state = Init(f.base, f.initial)
	f.logger.Debug("form reset")
	return f.deriveAll()
}

// Restore replaces the session state with a snapshot, for example one loaded
// from a store. Fields missing from the snapshot get their initial state,
// unknown fields are rejected. The active schema is re-derived from the
// restored data.
func (f *Form) Restore(snapshot FormState) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for name := range snapshot.Data {
		if !f.base.Has(name) {
			return schema.NewUnknownFieldError(name)
		}
	}

	next := Init(f.base, f.initial)
	next.OK = snapshot.OK
	for name, fs := range snapshot.Data {
		fs.Value = cloneValue(fs.Value)
		next.Data[name] = fs
	}

	f.state = next
	f.active = f.base
	return f.deriveAll()
}

func (f *Form) change(name string, value any) error {
	fs, ok := f.state.Data[name]
	if !ok {
		return schema.NewUnknownFieldError(name)
	}

	to, err := f.life.fire(phaseOf(fs), onChange, name, value)
	if err != nil {
		return err
	}

	if to != phaseTouched {
		f.state.Data[name] = FieldState{Value: cloneValue(value), OK: true}
		return nil
	}

	res, err := f.active.ValidateField(name, schema.Entity{name: value})
	if err != nil {
		return err
	}
	f.state.Data[name] = FieldState{Value: cloneValue(value), Error: res.Message, Touched: true, OK: res.OK}
	return nil
}

func (f *Form) blur(name string, raw, value any) error {
	fs, ok := f.state.Data[name]
	if !ok {
		return schema.NewUnknownFieldError(name)
	}

	to, err := f.life.fire(phaseOf(fs), onBlur, name, raw)
	if errors.Is(err, ErrTransitionRejected) {
		return nil
	}
	if err != nil {
		return err
	}

	res, err := f.active.ValidateField(name, schema.Entity{name: value})
	if err != nil {
		return err
	}
	f.state.Data[name] = FieldState{
		Value:   cloneValue(value),
		Error:   res.Message,
		Touched: to == phaseTouched,
		OK:      res.OK,
	}

	return f.derive(name)
}

func (f *Form) blurGuard(field string, value any) bool {
	return f.emptyBlur[field] || !rules.IsEmpty(value)
}

// derive rebuilds the active schema when name is a trigger field.
func (f *Form) derive(name string) error {
	d, ok := f.triggers[name]
	if !ok {
		return nil
	}

	patch, err := d(f.state.Entity())
	if err != nil {
		f.logger.Warn("schema derivation failed", logger.Field(name), logger.Error(err))
		return errors.Join(ErrDerive, err)
	}
	if len(patch) == 0 {
		return nil
	}

	rebuilt, err := f.active.Rebuild(patch)
	if err != nil {
		f.logger.Warn("schema derivation failed", logger.Field(name), logger.Error(err))
		return errors.Join(ErrDerive, err)
	}
	f.active = rebuilt

	f.logger.Debug("schema rebuilt",
		logger.Field(name),
		slog.Any("patched", patch.Fields(rebuilt)),
	)
	return nil
}

func (f *Form) deriveAll() error {
	for _, name := range f.triggerOrder {
		if err := f.derive(name); err != nil {
			return err
		}
	}
	return nil
}
