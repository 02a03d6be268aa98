package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
)

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrInvalidArgument, http.StatusBadRequest},
		{ErrUnauthenticated, http.StatusUnauthorized},
		{ErrUnavailable, http.StatusServiceUnavailable},
		{ErrTimeout, http.StatusGatewayTimeout},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToHTTPStatus(tt.code))
		})
	}
}

func TestWrap_KeepsCode(t *testing.T) {
	base := NotFound("work item not found")
	wrapped := Wrap(base, "modify failed")

	assert.Equal(t, ErrNotFound, CodeOf(wrapped))
	assert.True(t, HasCode(wrapped, ErrNotFound))
	assert.True(t, Is(wrapped, base))
}

func TestWrap_PlainErrorBecomesInternal(t *testing.T) {
	wrapped := Wrap(fmt.Errorf("boom"), "failed")

	assert.Equal(t, ErrInternal, CodeOf(wrapped))
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestToHTTPError(t *testing.T) {
	t.Run("app error keeps message without cause", func(t *testing.T) {
		err := Unavailable("database unreachable", fmt.Errorf("dial tcp: refused"))

		httpErr := ToHTTPError(err)

		assert.Equal(t, http.StatusServiceUnavailable, httpErr.Code)
		assert.Equal(t, "database unreachable", httpErr.Message)
		assert.ErrorIs(t, httpErr.Internal, err)
	})

	t.Run("echo error passes through", func(t *testing.T) {
		echoErr := echo.NewHTTPError(http.StatusMethodNotAllowed, "nope")

		assert.Same(t, echoErr, ToHTTPError(echoErr))
	})

	t.Run("plain error hides details", func(t *testing.T) {
		httpErr := ToHTTPError(fmt.Errorf("secret driver detail"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), httpErr.Message)
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, ToHTTPError(nil))
	})
}

func TestLogError_LevelByCode(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	LogError(logger, InvalidArgument("bad date", nil), "validation")
	LogError(logger, Unavailable("db down", nil), "storage")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
		assert.Equal(t, ErrUnavailable, entries[1].ContextMap()["error_code"])
	}
}
