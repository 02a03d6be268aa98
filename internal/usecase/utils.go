package usecase

import (
	"errors"
	"strings"

	"github.com/wekeepgrowing/workitem-tracker/internal/domain/entity"
	apperrors "github.com/wekeepgrowing/workitem-tracker/pkg/errors"
)

// requireOwner 호출자 식별자가 비어 있으면 UNAUTHENTICATED
func requireOwner(owner string) error {
	if strings.TrimSpace(owner) == "" {
		return apperrors.NewAppError(apperrors.ErrUnauthenticated, "호출자를 식별할 수 없습니다", entity.ErrOwnerRequired)
	}
	return nil
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.InvalidArgument("작업 항목 ID는 필수입니다", entity.ErrIDRequired)
	}
	return nil
}

// domainError 엔티티 검증 에러를 INVALID_ARGUMENT로 변환
func domainError(err error) error {
	switch {
	case errors.Is(err, entity.ErrOwnerRequired):
		return requireOwner("")
	case errors.Is(err, entity.ErrInvalidDate):
		return apperrors.InvalidArgument(err.Error(), err)
	default:
		return err
	}
}
