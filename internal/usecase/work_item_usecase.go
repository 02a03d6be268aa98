package usecase

import (
	"context"

	"github.com/wekeepgrowing/workitem-tracker/internal/domain/entity"
	"github.com/wekeepgrowing/workitem-tracker/internal/domain/repository"
	"github.com/wekeepgrowing/workitem-tracker/internal/usecase/dto"
	"github.com/wekeepgrowing/workitem-tracker/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/workitem-tracker/pkg/errors"
	"go.uber.org/zap"
)

// WorkItemUseCase 작업 항목 유스케이스 구현체
type WorkItemUseCase struct {
	logger   *zap.Logger
	workRepo repository.WorkItemRepository
}

// NewWorkItemUseCase 새 작업 항목 유스케이스 생성
func NewWorkItemUseCase(logger *zap.Logger, workRepo repository.WorkItemRepository) interfaces.WorkItemUseCase {
	return &WorkItemUseCase{
		logger:   logger,
		workRepo: workRepo,
	}
}

// Submit 새 작업 항목 등록
func (uc *WorkItemUseCase) Submit(ctx context.Context, owner string, input dto.SubmitWorkItemInput) (string, error) {
	if err := requireOwner(owner); err != nil {
		return "", err
	}

	item, err := entity.NewWorkItem(owner, input.Date, input.Description, input.Guide, input.Status)
	if err != nil {
		return "", domainError(err)
	}

	id, err := uc.workRepo.Create(ctx, item)
	if err != nil {
		apperrors.LogError(uc.logger, err, "작업 항목 등록 실패", zap.String("owner", owner))
		return "", err
	}

	uc.logger.Info("작업 항목 등록",
		zap.String("owner", owner),
		zap.String("id", id),
		zap.String("date", item.DateString()),
	)
	return id, nil
}

// Modify 설명과 상태 수정
func (uc *WorkItemUseCase) Modify(ctx context.Context, owner string, input dto.ModifyWorkItemInput) (string, error) {
	if err := requireOwner(owner); err != nil {
		return "", err
	}
	if err := requireID(input.ID); err != nil {
		return "", err
	}

	id, err := uc.workRepo.Update(ctx, owner, input.ID, input.Description, input.Status)
	if err != nil {
		apperrors.LogError(uc.logger, err, "작업 항목 수정 실패", zap.String("owner", owner), zap.String("id", input.ID))
		return "", err
	}

	uc.logger.Info("작업 항목 수정", zap.String("owner", owner), zap.String("id", id))
	return id, nil
}

// Archive 작업 항목 보관 처리
func (uc *WorkItemUseCase) Archive(ctx context.Context, owner, id string) error {
	if err := requireOwner(owner); err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}

	if err := uc.workRepo.FlipArchive(ctx, owner, id); err != nil {
		apperrors.LogError(uc.logger, err, "작업 항목 보관 실패", zap.String("owner", owner), zap.String("id", id))
		return err
	}

	uc.logger.Info("작업 항목 보관", zap.String("owner", owner), zap.String("id", id))
	return nil
}

// List 보관 여부별 목록 조회
func (uc *WorkItemUseCase) List(ctx context.Context, owner string, retrieveType dto.RetrieveType) ([]*entity.WorkItem, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}

	items, err := uc.workRepo.ListByOwner(ctx, owner, retrieveType.Archived())
	if err != nil {
		apperrors.LogError(uc.logger, err, "작업 항목 목록 조회 실패", zap.String("owner", owner))
		return nil, err
	}

	uc.logger.Debug("작업 항목 목록 조회",
		zap.String("owner", owner),
		zap.Bool("archived", retrieveType.Archived()),
		zap.Int("count", len(items)),
	)
	return items, nil
}

// LoadForEdit 수정 화면용 설명/상태 조회
func (uc *WorkItemUseCase) LoadForEdit(ctx context.Context, owner, id string) (*entity.WorkItemSummary, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	if err := requireID(id); err != nil {
		return nil, err
	}

	summary, err := uc.workRepo.FetchFields(ctx, owner, id)
	if err != nil {
		apperrors.LogError(uc.logger, err, "작업 항목 조회 실패", zap.String("owner", owner), zap.String("id", id))
		return nil, err
	}
	return summary, nil
}

// Claim 작업 항목을 가져오면서 삭제. 동시에 호출되면 한 요청만 성공합니다.
func (uc *WorkItemUseCase) Claim(ctx context.Context, owner, id string) (*entity.WorkItem, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	if err := requireID(id); err != nil {
		return nil, err
	}

	item, err := uc.workRepo.FetchAndDelete(ctx, owner, id)
	if err != nil {
		apperrors.LogError(uc.logger, err, "작업 항목 가져오기 실패", zap.String("owner", owner), zap.String("id", id))
		return nil, err
	}

	uc.logger.Info("작업 항목 가져오기", zap.String("owner", owner), zap.String("id", id))
	return item, nil
}
