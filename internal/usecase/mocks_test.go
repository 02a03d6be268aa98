package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wekeepgrowing/workitem-tracker/internal/domain/entity"
)

type mockWorkItemRepository struct {
	mock.Mock
}

func (m *mockWorkItemRepository) Create(ctx context.Context, item *entity.WorkItem) (string, error) {
	args := m.Called(ctx, item)
	return args.String(0), args.Error(1)
}

func (m *mockWorkItemRepository) Update(ctx context.Context, owner, id, description, status string) (string, error) {
	args := m.Called(ctx, owner, id, description, status)
	return args.String(0), args.Error(1)
}

func (m *mockWorkItemRepository) FlipArchive(ctx context.Context, owner, id string) error {
	return m.Called(ctx, owner, id).Error(0)
}

func (m *mockWorkItemRepository) ListByOwner(ctx context.Context, owner string, archived bool) ([]*entity.WorkItem, error) {
	args := m.Called(ctx, owner, archived)
	items, _ := args.Get(0).([]*entity.WorkItem)
	return items, args.Error(1)
}

func (m *mockWorkItemRepository) FetchAndDelete(ctx context.Context, owner, id string) (*entity.WorkItem, error) {
	args := m.Called(ctx, owner, id)
	item, _ := args.Get(0).(*entity.WorkItem)
	return item, args.Error(1)
}

func (m *mockWorkItemRepository) FetchFields(ctx context.Context, owner, id string) (*entity.WorkItemSummary, error) {
	args := m.Called(ctx, owner, id)
	summary, _ := args.Get(0).(*entity.WorkItemSummary)
	return summary, args.Error(1)
}

type mockMailRepository struct {
	mock.Mock
}

func (m *mockMailRepository) SendMailWithAttachment(ctx context.Context, mail *entity.Mail) error {
	return m.Called(ctx, mail).Error(0)
}
