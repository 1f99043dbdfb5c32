package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors". It returns an empty Attr
// when every error is nil.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error"; nil yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records a form field name.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// FormID records a form session identifier; nil yields an empty Attr.
func FormID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("form_id", id)
}

// Component records the component name.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// FieldErrors groups per-field validation messages under "field_errors".
// An empty map yields an empty Attr.
func FieldErrors(errs map[string]string) slog.Attr {
	if len(errs) == 0 {
		return slog.Attr{}
	}
	as := make([]slog.Attr, 0, len(errs))
	for field, msg := range errs {
		as = append(as, slog.String(field, msg))
	}
	return slog.Attr{Key: "field_errors", Value: slog.GroupValue(as...)}
}
