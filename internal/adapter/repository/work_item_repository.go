package repository

import (
	"context"
	"time"

	"github.com/wekeepgrowing/workitem-tracker/internal/domain/entity"
	"github.com/wekeepgrowing/workitem-tracker/internal/domain/repository"
	"github.com/wekeepgrowing/workitem-tracker/internal/infrastructure/db/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WorkItemRepositoryImpl struct {
	db *gorm.DB
}

// NewWorkItemRepository 작업 항목 레포지토리 구현체 생성
func NewWorkItemRepository(db *gorm.DB) repository.WorkItemRepository {
	return &WorkItemRepositoryImpl{db: db}
}

func toWorkItemModel(item *entity.WorkItem) *model.WorkItemModel {
	return &model.WorkItemModel{
		ID:          item.ID,
		Owner:       item.Owner,
		Date:        datatypes.Date(item.Date),
		Description: item.Description,
		Guide:       item.Guide,
		Status:      item.Status,
		Archived:    item.Archived,
	}
}

func toWorkItemEntity(m *model.WorkItemModel) *entity.WorkItem {
	return &entity.WorkItem{
		ID:          m.ID,
		Owner:       m.Owner,
		Date:        time.Time(m.Date),
		Description: m.Description,
		Guide:       m.Guide,
		Status:      m.Status,
		Archived:    m.Archived,
	}
}

// Create 새 작업 항목 저장. 보관 플래그는 항상 false로 시작합니다.
func (r *WorkItemRepositoryImpl) Create(ctx context.Context, item *entity.WorkItem) (string, error) {
	m := toWorkItemModel(item)
	m.Archived = false

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return "", storageError(err, "작업 항목 저장 실패")
	}
	return m.ID, nil
}

// Update 설명과 상태만 수정
func (r *WorkItemRepositoryImpl) Update(ctx context.Context, owner, id, description, status string) (string, error) {
	result := r.db.WithContext(ctx).
		Model(&model.WorkItemModel{}).
		Where("idwork = ? AND username = ?", id, owner).
		Updates(map[string]interface{}{
			"description": description,
			"status":      status,
		})
	if result.Error != nil {
		return "", storageError(result.Error, "작업 항목 수정 실패")
	}
	if result.RowsAffected == 0 {
		return "", notFound()
	}
	return id, nil
}

// FlipArchive 보관 플래그를 true로 설정. 이미 보관된 항목에도 성공합니다.
func (r *WorkItemRepositoryImpl) FlipArchive(ctx context.Context, owner, id string) error {
	result := r.db.WithContext(ctx).
		Model(&model.WorkItemModel{}).
		Where("idwork = ? AND username = ?", id, owner).
		Update("archive", true)
	if result.Error != nil {
		return storageError(result.Error, "작업 항목 보관 실패")
	}
	if result.RowsAffected == 0 {
		return notFound()
	}
	return nil
}

// ListByOwner 소유자와 보관 여부로 작업 항목 조회
func (r *WorkItemRepositoryImpl) ListByOwner(ctx context.Context, owner string, archived bool) ([]*entity.WorkItem, error) {
	var models []model.WorkItemModel

	if err := r.db.WithContext(ctx).
		Where("username = ? AND archive = ?", owner, archived).
		Find(&models).Error; err != nil {
		return nil, storageError(err, "작업 항목 목록 조회 실패")
	}

	items := make([]*entity.WorkItem, 0, len(models))
	for i := range models {
		items = append(items, toWorkItemEntity(&models[i]))
	}
	return items, nil
}

// FetchAndDelete 작업 항목을 읽고 같은 트랜잭션에서 삭제.
// 삭제가 정확히 한 행에 적용되지 않으면 다른 요청이 먼저 가져간 것으로 보고 NOT_FOUND를 반환합니다.
func (r *WorkItemRepositoryImpl) FetchAndDelete(ctx context.Context, owner, id string) (*entity.WorkItem, error) {
	var claimed *entity.WorkItem

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.WorkItemModel
		if err := tx.Where("idwork = ? AND username = ?", id, owner).First(&m).Error; err != nil {
			return err
		}

		result := tx.Where("idwork = ? AND username = ?", id, owner).Delete(&model.WorkItemModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != 1 {
			return gorm.ErrRecordNotFound
		}

		claimed = toWorkItemEntity(&m)
		return nil
	})
	if err != nil {
		return nil, storageError(err, "작업 항목 가져오기 실패")
	}
	return claimed, nil
}

// FetchFields 수정 화면용 설명/상태 조회
func (r *WorkItemRepositoryImpl) FetchFields(ctx context.Context, owner, id string) (*entity.WorkItemSummary, error) {
	var m model.WorkItemModel

	if err := r.db.WithContext(ctx).
		Select("idwork", "description", "status").
		Where("idwork = ? AND username = ?", id, owner).
		First(&m).Error; err != nil {
		return nil, storageError(err, "작업 항목 조회 실패")
	}

	return &entity.WorkItemSummary{
		ID:          m.ID,
		Description: m.Description,
		Status:      m.Status,
	}, nil
}
