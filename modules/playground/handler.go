package playground

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/validify/pkg/formstate"
	"github.com/dmitrymomot/validify/pkg/formstore"
	"github.com/dmitrymomot/validify/pkg/logger"
)

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithIDGenerator replaces the session id generator.
func WithIDGenerator(fn func() string) Option {
	return func(h *Handler) {
		if fn != nil {
			h.newID = fn
		}
	}
}

// WithFields replaces the demo fields and their derivation rules.
func WithFields(fields []Field, deriveYAML []byte) Option {
	return func(h *Handler) {
		h.fields = fields
		h.deriveSrc = deriveYAML
	}
}

// Handler serves the playground.
type Handler struct {
	store     formstore.Store
	def       *definition
	fields    []Field
	deriveSrc []byte
	logger    *slog.Logger
	newID     func() string
}

// New creates a Handler keeping sessions in store.
func New(store formstore.Store, opts ...Option) (*Handler, error) {
	if store == nil {
		return nil, fmt.Errorf("playground: store is nil")
	}

	h := &Handler{
		store:     store,
		fields:    DemoFields(),
		deriveSrc: deriveRules,
		logger:    logger.NewNop(),
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(h)
	}

	def, err := newDefinition(h.fields, h.deriveSrc)
	if err != nil {
		return nil, fmt.Errorf("playground: %w", err)
	}
	h.def = def
	h.logger = h.logger.With(logger.Component("playground"))
	return h, nil
}

// Router returns the playground routes.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.page)
	r.Route("/forms/{id}", func(r chi.Router) {
		r.Get("/", h.state)
		r.Post("/change/{field}", h.action("change", h.change))
		r.Post("/blur/{field}", h.action("blur", h.blur))
		r.Post("/toggle/{field}", h.action("toggle", h.toggle))
		r.Post("/validate", h.action("validate", h.validate))
		r.Post("/reset", h.action("reset", h.reset))
	})

	return r
}

func (h *Handler) newForm() (*formstate.Form, error) {
	opts := append(h.def.formOptions(), formstate.WithLogger(h.logger))
	return formstate.New(h.def.schema, opts...)
}

func (h *Handler) load(ctx context.Context, id string) (*formstate.Form, error) {
	snap, err := h.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	form, err := h.newForm()
	if err != nil {
		return nil, err
	}
	if err := form.Restore(snap); err != nil {
		return nil, err
	}
	return form, nil
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	form, err := h.newForm()
	if err != nil {
		writeError(w, err)
		return
	}

	id := h.newID()
	if err := h.store.Save(r.Context(), id, form.State()); err != nil {
		h.logger.ErrorContext(r.Context(), "save form", logger.FormID(id), logger.Error(err))
		writeError(w, err)
		return
	}
	h.logger.DebugContext(r.Context(), "form session started", logger.FormID(id))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := Page(id, h.def.fields, form.State()).Render(r.Context(), w); err != nil {
		h.logger.ErrorContext(r.Context(), "render page", logger.FormID(id), logger.Error(err))
	}
}

func (h *Handler) state(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	form, err := h.load(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, newView(id, form.State(), true))
}

// actionFunc applies one request to form and reports whether the field
// values should be sent back.
type actionFunc func(form *formstate.Form, field string, sig signals) (withValues bool, err error)

func (h *Handler) action(event string, fn actionFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")
		field := chi.URLParam(r, "field")

		sig, err := readSignals(r)
		if err != nil {
			writeError(w, fmt.Errorf("%w: %w", ErrBadSignals, err))
			return
		}

		form, err := h.load(ctx, id)
		if err != nil {
			writeError(w, err)
			return
		}

		withValues, err := fn(form, field, sig)
		if err != nil {
			h.logger.DebugContext(ctx, "form action rejected",
				logger.FormID(id), logger.Event(event), logger.Field(field), logger.Error(err))
			writeError(w, err)
			return
		}

		st := form.State()
		if err := h.store.Save(ctx, id, st); err != nil {
			h.logger.ErrorContext(ctx, "save form", logger.FormID(id), logger.Error(err))
			writeError(w, err)
			return
		}

		h.logger.DebugContext(ctx, "form action applied",
			logger.FormID(id), logger.Event(event), logger.Field(field),
			logger.FieldErrors(st.Errors()),
		)

		if err := render(w, r, newView("", st, withValues)); err != nil {
			h.logger.ErrorContext(ctx, "render state", logger.FormID(id), logger.Error(err))
		}
	}
}

func (h *Handler) change(form *formstate.Form, field string, sig signals) (bool, error) {
	f, ok := h.def.byName[field]
	if ok && f.Kind == formstate.KindList {
		return false, fmt.Errorf("%w: use toggle for %q", formstate.ErrInvalidEvent, field)
	}
	return false, form.HandleChange(formstate.Event{Name: field, Value: sig.Values[field], Kind: f.Kind})
}

func (h *Handler) blur(form *formstate.Form, field string, sig signals) (bool, error) {
	f := h.def.byName[field]
	return false, form.HandleBlur(formstate.Event{Name: field, Value: sig.Values[field], Kind: f.Kind})
}

func (h *Handler) toggle(form *formstate.Form, field string, sig signals) (bool, error) {
	f, ok := h.def.byName[field]
	if ok && f.Kind != formstate.KindList {
		return false, fmt.Errorf("%w: %q", ErrNotListField, field)
	}
	if sig.Option == "" {
		return false, fmt.Errorf("%w: missing option", formstate.ErrInvalidEvent)
	}
	return true, form.HandleChange(formstate.Event{Name: field, Value: sig.Option, Kind: formstate.KindList, Checked: sig.Checked})
}

func (h *Handler) validate(form *formstate.Form, _ string, _ signals) (bool, error) {
	form.Validate()
	return false, nil
}

func (h *Handler) reset(form *formstate.Form, _ string, _ signals) (bool, error) {
	return true, form.Reset()
}
