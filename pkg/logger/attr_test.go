package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validify/pkg/logger"
)

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("Group", func(t *testing.T) {
		t.Parallel()
		a := logger.Group("g", slog.String("a", "b"))
		assert.Equal(t, "g", a.Key)
		require.Equal(t, slog.KindGroup, a.Value.Kind())
		assert.Len(t, a.Value.Group(), 1)
	})

	t.Run("Error", func(t *testing.T) {
		t.Parallel()
		assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
		a := logger.Error(errors.New("boom"))
		assert.Equal(t, "error", a.Key)
		assert.Equal(t, "boom", a.Value.Any().(error).Error())
	})

	t.Run("Errors skips nil", func(t *testing.T) {
		t.Parallel()
		assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
		a := logger.Errors(nil, errors.New("x"))
		assert.Equal(t, "errors", a.Key)
		group := a.Value.Group()
		require.Len(t, group, 1)
		assert.Equal(t, "1", group[0].Key)
	})

	t.Run("Field", func(t *testing.T) {
		t.Parallel()
		a := logger.Field("age")
		assert.Equal(t, "field", a.Key)
		assert.Equal(t, "age", a.Value.String())
	})

	t.Run("FormID", func(t *testing.T) {
		t.Parallel()
		assert.True(t, logger.FormID(nil).Equal(slog.Attr{}))
		assert.Equal(t, "form_id", logger.FormID("f1").Key)
	})

	t.Run("Component and Event", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "playground", logger.Component("playground").Value.String())
		assert.Equal(t, "blur", logger.Event("blur").Value.String())
	})

	t.Run("FieldErrors", func(t *testing.T) {
		t.Parallel()
		assert.True(t, logger.FieldErrors(nil).Equal(slog.Attr{}))
		a := logger.FieldErrors(map[string]string{"age": "too low"})
		assert.Equal(t, "field_errors", a.Key)
		assert.Len(t, a.Value.Group(), 1)
	})
}
