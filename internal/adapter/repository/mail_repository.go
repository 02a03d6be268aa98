package repository

import (
	"context"
	"errors"

	"github.com/wekeepgrowing/workitem-tracker/internal/domain/entity"
	"github.com/wekeepgrowing/workitem-tracker/internal/domain/repository"
	"github.com/wekeepgrowing/workitem-tracker/internal/infrastructure/mail"
	apperrors "github.com/wekeepgrowing/workitem-tracker/pkg/errors"
)

// MailRepository 메일 릴레이 어댑터. MIME 메시지를 만들어 릴레이로 넘깁니다.
type MailRepository struct {
	relay mail.Relay
}

// NewMailRepository 메일 레포지토리 어댑터 생성
func NewMailRepository(relay mail.Relay) repository.MailRepository {
	return &MailRepository{relay: relay}
}

func toMailMessage(m *entity.Mail) mail.Message {
	attachments := make([]mail.Attachment, 0, len(m.Attachments))
	for _, a := range m.Attachments {
		attachments = append(attachments, mail.Attachment{
			Name:        a.Name,
			ContentType: a.ContentType,
			Data:        a.Data,
		})
	}
	return mail.Message{
		From:        m.From,
		To:          m.To,
		Subject:     m.Subject,
		TextBody:    m.TextBody,
		HTMLBody:    m.HTMLBody,
		Attachments: attachments,
	}
}

// SendMailWithAttachment 메일 발송. 메시지 구성 실패는 INVALID_ARGUMENT, 릴레이 실패는 UNAVAILABLE로 분류합니다.
func (m *MailRepository) SendMailWithAttachment(ctx context.Context, msg *entity.Mail) error {
	raw, err := toMailMessage(msg).Build()
	if err != nil {
		return apperrors.InvalidArgument("메일 구성 실패", err)
	}

	if err := m.relay.SendRaw(ctx, msg.From, msg.To, raw); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return apperrors.NewAppError(apperrors.ErrTimeout, "메일 발송 시간 초과", err)
		}
		return apperrors.Unavailable("메일 발송 실패", err)
	}
	return nil
}
