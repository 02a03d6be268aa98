package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ToHTTPError는 에러를 Echo HTTP 에러로 변환합니다
func ToHTTPError(err error) *echo.HTTPError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if As(err, &appErr) {
		httpErr := echo.NewHTTPError(ToHTTPStatus(appErr.Code()), appErr.Message())
		return httpErr.SetInternal(err)
	}

	// Echo 에러인 경우 그대로 반환
	var echoErr *echo.HTTPError
	if As(err, &echoErr) {
		return echoErr
	}

	// 내부 에러 내용은 응답에 노출하지 않습니다
	return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).SetInternal(err)
}
