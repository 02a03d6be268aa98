package errors

import (
	"errors"
	"fmt"
)

// 표준 라이브러리 함수 재노출
var (
	New    = errors.New
	Unwrap = errors.Unwrap
	Is     = errors.Is
	As     = errors.As
)

// Error는 기본 에러 인터페이스를 확장합니다
type Error interface {
	error
	Code() string
	Unwrap() error
}

// AppError는 코드가 붙은 애플리케이션 에러입니다
type AppError struct {
	code    string
	message string
	err     error
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.message, e.err.Error())
	}
	return e.message
}

func (e *AppError) Code() string {
	return e.code
}

// Message는 원인 에러를 제외한 메시지만 반환합니다
func (e *AppError) Message() string {
	return e.message
}

func (e *AppError) Unwrap() error {
	return e.err
}

// NewAppError는 새 애플리케이션 에러를 생성합니다
func NewAppError(code string, message string, err error) *AppError {
	return &AppError{
		code:    code,
		message: message,
		err:     err,
	}
}

// NotFound는 대상이 없을 때 사용합니다
func NotFound(message string) *AppError {
	return NewAppError(ErrNotFound, message, nil)
}

// InvalidArgument는 입력 검증 실패에 사용합니다
func InvalidArgument(message string, err error) *AppError {
	return NewAppError(ErrInvalidArgument, message, err)
}

// Unavailable은 재시도 가능한 I/O 장애에 사용합니다
func Unavailable(message string, err error) *AppError {
	return NewAppError(ErrUnavailable, message, err)
}

// Wrap은 기존 에러를 래핑합니다. AppError인 경우 코드를 유지합니다
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if As(err, &appErr) {
		return NewAppError(appErr.Code(), message, err)
	}

	return NewAppError(ErrInternal, message, err)
}

// CodeOf는 에러 체인에서 가장 바깥쪽 AppError의 코드를 반환합니다
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if As(err, &appErr) {
		return appErr.Code()
	}
	return ErrInternal
}

// HasCode는 에러가 지정된 코드를 가지는지 확인합니다
func HasCode(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}
