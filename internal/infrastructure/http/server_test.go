package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestServer_Health(t *testing.T) {
	s := NewServer(Config{Port: "0"}, zap.NewNop())

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, HealthPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_GroupMiddleware(t *testing.T) {
	s := NewServer(Config{Port: "0"}, zap.NewNop())
	deny := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "denied")
		}
	}
	s.Group("", deny).GET("/retrieve", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/retrieve", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, HealthPath, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestValidator(t *testing.T) {
	type form struct {
		ID   string `form:"id" validate:"required,uuid"`
		Date string `query:"date" validate:"required,datetime=2006-01-02"`
	}
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(&form{ID: "7d0c1f52-2b9a-4a8e-9a57-7d7bd1f1b2a1", Date: "2024-01-15"}))

	err := v.Validate(&form{ID: "nope", Date: "15.01.2024"})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "id must be a UUID")
		assert.Contains(t, err.Error(), "date must be formatted as YYYY-MM-DD")
	}

	err = v.Validate(&form{})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "id is required")
	}
}
