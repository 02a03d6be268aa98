package repository

// Repositories 레포지토리 인터페이스 컬렉션
type Repositories struct {
	WorkItem WorkItemRepository
	Mail     MailRepository
}

// NewRepositories 레포지토리 컬렉션 생성
func NewRepositories(workItemRepo WorkItemRepository, mailRepo MailRepository) *Repositories {
	return &Repositories{
		WorkItem: workItemRepo,
		Mail:     mailRepo,
	}
}
