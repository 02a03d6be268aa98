package repository

import (
	"context"

	"github.com/wekeepgrowing/workitem-tracker/internal/domain/entity"
)

// MailRepository는 메일 발송을 위한 인터페이스입니다.
type MailRepository interface {
	// SendMailWithAttachment 첨부 파일이 있는 메일을 발송합니다.
	SendMailWithAttachment(ctx context.Context, mail *entity.Mail) error
}
