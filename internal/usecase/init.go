package usecase

import (
	"github.com/wekeepgrowing/workitem-tracker/internal/adapter/report"
	"github.com/wekeepgrowing/workitem-tracker/internal/config"
	"github.com/wekeepgrowing/workitem-tracker/internal/domain/repository"
	"github.com/wekeepgrowing/workitem-tracker/internal/infrastructure/mail"
	"github.com/wekeepgrowing/workitem-tracker/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// UseCases는 모든 유스케이스를 담고 있는 구조체입니다.
type UseCases struct {
	WorkItem interfaces.WorkItemUseCase
	Report   interfaces.ReportUseCase
}

// SetupUseCases는 유스케이스 구현체를 생성하고 의존성을 주입합니다.
func SetupUseCases(logger *zap.Logger, cfg *config.Config, repositories *repository.Repositories) *UseCases {
	return &UseCases{
		WorkItem: NewWorkItemUseCase(logger, repositories.WorkItem),
		Report: NewReportUseCase(
			logger,
			repositories.WorkItem,
			repositories.Mail,
			report.Build,
			ReportMailConfig{
				Sender:         cfg.Email.Sender,
				Recipients:     cfg.Email.Recipients,
				Subject:        cfg.Email.Subject,
				TextBody:       cfg.Email.TextBody,
				HTMLBody:       cfg.Email.HTMLBody,
				AttachmentName: cfg.Email.AttachmentName,
				ContentType:    mail.XLSXContentType,
			},
		),
	}
}
