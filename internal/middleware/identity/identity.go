// Package identity는 외부 인증 수단으로부터 호출자 이름을 추출해 요청 컨텍스트에 담습니다.
package identity

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	apperrors "github.com/wekeepgrowing/workitem-tracker/pkg/errors"
)

type contextKey string

const callerContextKey contextKey = "caller"

// WithCaller 컨텍스트에 호출자 이름 저장
func WithCaller(ctx context.Context, caller string) context.Context {
	return context.WithValue(ctx, callerContextKey, caller)
}

// CallerFromContext 컨텍스트에서 호출자 이름 조회
func CallerFromContext(ctx context.Context) (string, bool) {
	caller, ok := ctx.Value(callerContextKey).(string)
	return caller, ok && caller != ""
}

// Caller echo 요청에서 호출자 이름을 가져옵니다. 없으면 UNAUTHENTICATED.
func Caller(c echo.Context) (string, error) {
	caller, ok := CallerFromContext(c.Request().Context())
	if !ok {
		return "", apperrors.NewAppError(apperrors.ErrUnauthenticated, "인증이 필요합니다", nil)
	}
	return caller, nil
}

func setCaller(c echo.Context, caller string) {
	c.SetRequest(c.Request().WithContext(WithCaller(c.Request().Context(), caller)))
}

func skipped(c echo.Context, skipPaths []string) bool {
	path := c.Request().URL.Path
	for _, p := range skipPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func unauthorized(c echo.Context, message, code string) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"error": message,
		"code":  code,
	})
}
