package repository

import (
	"context"
	"errors"

	apperrors "github.com/wekeepgrowing/workitem-tracker/pkg/errors"
	"gorm.io/gorm"
)

// storageError 드라이버 에러를 애플리케이션 에러 코드로 분류
func storageError(err error, message string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NewAppError(apperrors.ErrNotFound, "작업 항목을 찾을 수 없습니다", err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return apperrors.NewAppError(apperrors.ErrTimeout, message, err)
	default:
		return apperrors.Unavailable(message, err)
	}
}

func notFound() error {
	return apperrors.NotFound("작업 항목을 찾을 수 없습니다")
}
