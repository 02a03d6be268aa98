package interfaces

import (
	"context"

	"github.com/wekeepgrowing/workitem-tracker/internal/domain/entity"
	"github.com/wekeepgrowing/workitem-tracker/internal/usecase/dto"
)

// WorkItemUseCase 작업 항목 유스케이스. 모든 메서드는 호출자 식별자를 명시적으로 받습니다.
type WorkItemUseCase interface {
	// Submit 새 작업 항목 등록 후 ID 반환
	Submit(ctx context.Context, owner string, input dto.SubmitWorkItemInput) (string, error)

	// Modify 설명과 상태 수정
	Modify(ctx context.Context, owner string, input dto.ModifyWorkItemInput) (string, error)

	// Archive 작업 항목 보관 처리
	Archive(ctx context.Context, owner, id string) error

	// List 보관 여부별 목록 조회
	List(ctx context.Context, owner string, retrieveType dto.RetrieveType) ([]*entity.WorkItem, error)

	// LoadForEdit 수정 화면용 설명/상태 조회
	LoadForEdit(ctx context.Context, owner, id string) (*entity.WorkItemSummary, error)

	// Claim 작업 항목을 가져오면서 삭제
	Claim(ctx context.Context, owner, id string) (*entity.WorkItem, error)
}
