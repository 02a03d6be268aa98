package usecase

import (
	"context"

	"github.com/wekeepgrowing/workitem-tracker/internal/domain/entity"
	"github.com/wekeepgrowing/workitem-tracker/internal/domain/repository"
	"github.com/wekeepgrowing/workitem-tracker/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/workitem-tracker/pkg/errors"
	"go.uber.org/zap"
)

// ReportBuilder 작업 항목 목록으로 첨부할 리포트 바이트 생성
type ReportBuilder func(items []*entity.WorkItem) ([]byte, error)

// ReportMailConfig 리포트 메일 설정
type ReportMailConfig struct {
	Sender         string
	Recipients     []string
	Subject        string
	TextBody       string
	HTMLBody       string
	AttachmentName string
	ContentType    string
}

// ReportUseCase 리포트 메일 유스케이스 구현체
type ReportUseCase struct {
	logger   *zap.Logger
	workRepo repository.WorkItemRepository
	mailRepo repository.MailRepository
	build    ReportBuilder
	mail     ReportMailConfig
}

// NewReportUseCase 새 리포트 유스케이스 생성
func NewReportUseCase(
	logger *zap.Logger,
	workRepo repository.WorkItemRepository,
	mailRepo repository.MailRepository,
	build ReportBuilder,
	mailConfig ReportMailConfig,
) interfaces.ReportUseCase {
	return &ReportUseCase{
		logger:   logger,
		workRepo: workRepo,
		mailRepo: mailRepo,
		build:    build,
		mail:     mailConfig,
	}
}

// SendActiveReport 활성 작업 항목 리포트를 만들어 메일로 발송.
// 발송 실패는 로그로만 남기고 호출자에게 전달하지 않습니다.
func (uc *ReportUseCase) SendActiveReport(ctx context.Context, owner string) error {
	if err := requireOwner(owner); err != nil {
		return err
	}

	items, err := uc.workRepo.ListByOwner(ctx, owner, false)
	if err != nil {
		apperrors.LogError(uc.logger, err, "리포트 대상 조회 실패", zap.String("owner", owner))
		return err
	}

	data, err := uc.build(items)
	if err != nil {
		wrapped := apperrors.NewAppError(apperrors.ErrInternal, "리포트 생성 실패", err)
		apperrors.LogError(uc.logger, wrapped, "리포트 생성 실패", zap.String("owner", owner))
		return wrapped
	}

	mail := &entity.Mail{
		From:     uc.mail.Sender,
		To:       uc.mail.Recipients,
		Subject:  uc.mail.Subject,
		TextBody: uc.mail.TextBody,
		HTMLBody: uc.mail.HTMLBody,
		Attachments: []entity.MailAttachment{{
			Name:        uc.mail.AttachmentName,
			ContentType: uc.mail.ContentType,
			Data:        data,
		}},
	}

	if err := uc.mailRepo.SendMailWithAttachment(ctx, mail); err != nil {
		apperrors.LogError(uc.logger, err, "리포트 메일 발송 실패",
			zap.String("owner", owner),
			zap.Strings("recipients", uc.mail.Recipients),
		)
		return nil
	}

	uc.logger.Info("리포트 메일 발송",
		zap.String("owner", owner),
		zap.Int("items", len(items)),
		zap.Int("attachment_size", len(data)),
	)
	return nil
}
