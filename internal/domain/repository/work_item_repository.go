package repository

import (
	"context"

	"github.com/wekeepgrowing/workitem-tracker/internal/domain/entity"
)

// WorkItemRepository 작업 항목 저장소 인터페이스.
// ID 기반 메서드는 owner로 범위를 제한하며, 대상이 없으면 NOT_FOUND 에러를 반환합니다.
type WorkItemRepository interface {
	// Create 새 작업 항목 저장 후 ID 반환
	Create(ctx context.Context, item *entity.WorkItem) (string, error)

	// Update 설명과 상태만 수정
	Update(ctx context.Context, owner, id, description, status string) (string, error)

	// FlipArchive 보관 플래그를 true로 설정
	FlipArchive(ctx context.Context, owner, id string) error

	// ListByOwner 소유자의 작업 항목 중 보관 여부가 일치하는 항목 조회
	ListByOwner(ctx context.Context, owner string, archived bool) ([]*entity.WorkItem, error)

	// FetchAndDelete 작업 항목을 조회하고 같은 트랜잭션에서 삭제
	FetchAndDelete(ctx context.Context, owner, id string) (*entity.WorkItem, error)

	// FetchFields 수정 화면용 설명/상태 조회
	FetchFields(ctx context.Context, owner, id string) (*entity.WorkItemSummary, error)
}
