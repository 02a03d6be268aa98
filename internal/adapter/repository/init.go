package repository

import (
	domainrepo "github.com/wekeepgrowing/workitem-tracker/internal/domain/repository"
	"github.com/wekeepgrowing/workitem-tracker/internal/infrastructure/mail"
	"gorm.io/gorm"
)

// InitRepositories 모든 레포지토리를 초기화하고 컬렉션을 반환합니다
func InitRepositories(database *gorm.DB, relay mail.Relay) *domainrepo.Repositories {
	return domainrepo.NewRepositories(
		NewWorkItemRepository(database),
		NewMailRepository(relay),
	)
}
