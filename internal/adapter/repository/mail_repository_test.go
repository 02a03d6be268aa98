package repository

import (
	"bytes"
	"context"
	"errors"
	"net/mail"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wekeepgrowing/workitem-tracker/internal/domain/entity"
	apperrors "github.com/wekeepgrowing/workitem-tracker/pkg/errors"
)

type stubRelay struct {
	err  error
	from string
	to   []string
	sent [][]byte
}

func (s *stubRelay) SendRaw(ctx context.Context, from string, to []string, raw []byte) error {
	if s.err != nil {
		return s.err
	}
	s.from, s.to = from, to
	s.sent = append(s.sent, raw)
	return nil
}

func sampleMail() *entity.Mail {
	return &entity.Mail{
		From:     "reports@example.com",
		To:       []string{"team@example.com"},
		Subject:  "Weekly AWS Status Report",
		TextBody: "Hello",
		Attachments: []entity.MailAttachment{
			{Name: "WorkReport.xlsx", ContentType: "application/octet-stream", Data: []byte("x")},
		},
	}
}

func TestMailRepository_SendMailWithAttachment(t *testing.T) {
	relay := &stubRelay{}

	err := NewMailRepository(relay).SendMailWithAttachment(context.Background(), sampleMail())

	require.NoError(t, err)
	require.Len(t, relay.sent, 1)
	assert.Equal(t, "reports@example.com", relay.from)
	assert.Equal(t, []string{"team@example.com"}, relay.to)

	msg, err := mail.ReadMessage(bytes.NewReader(relay.sent[0]))
	require.NoError(t, err)
	assert.Equal(t, "Weekly AWS Status Report", msg.Header.Get("Subject"))
}

func TestMailRepository_ClassifiesFailures(t *testing.T) {
	err := NewMailRepository(&stubRelay{err: errors.New("throttled")}).SendMailWithAttachment(context.Background(), sampleMail())
	assert.Equal(t, apperrors.ErrUnavailable, apperrors.CodeOf(err))

	err = NewMailRepository(&stubRelay{err: context.DeadlineExceeded}).SendMailWithAttachment(context.Background(), sampleMail())
	assert.Equal(t, apperrors.ErrTimeout, apperrors.CodeOf(err))

	err = NewMailRepository(&stubRelay{}).SendMailWithAttachment(context.Background(), &entity.Mail{From: "a@example.com"})
	assert.Equal(t, apperrors.ErrInvalidArgument, apperrors.CodeOf(err))
}
