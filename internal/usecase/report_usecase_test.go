package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wekeepgrowing/workitem-tracker/internal/domain/entity"
	apperrors "github.com/wekeepgrowing/workitem-tracker/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
)

var testMailConfig = ReportMailConfig{
	Sender:         "reports@example.com",
	Recipients:     []string{"team@example.com"},
	Subject:        "Weekly AWS Status Report",
	TextBody:       "Hello",
	HTMLBody:       "<h1>Hello!</h1>",
	AttachmentName: "WorkReport.xlsx",
	ContentType:    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

func stubBuilder(data []byte, err error) ReportBuilder {
	return func(items []*entity.WorkItem) ([]byte, error) {
		return data, err
	}
}

func TestReportUseCase_SendActiveReport(t *testing.T) {
	workRepo := new(mockWorkItemRepository)
	mailRepo := new(mockMailRepository)
	items := []*entity.WorkItem{{ID: "id-1", Owner: "alice"}}
	workRepo.On("ListByOwner", mock.Anything, "alice", false).Return(items, nil)
	mailRepo.On("SendMailWithAttachment", mock.Anything, mock.MatchedBy(func(m *entity.Mail) bool {
		return m.From == "reports@example.com" &&
			m.Subject == "Weekly AWS Status Report" &&
			len(m.Attachments) == 1 &&
			m.Attachments[0].Name == "WorkReport.xlsx" &&
			string(m.Attachments[0].Data) == "xlsx"
	})).Return(nil)

	uc := NewReportUseCase(zap.NewNop(), workRepo, mailRepo, stubBuilder([]byte("xlsx"), nil), testMailConfig)

	require.NoError(t, uc.SendActiveReport(context.Background(), "alice"))
	mailRepo.AssertExpectations(t)
}

func TestReportUseCase_MailFailureIsOnlyLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	workRepo := new(mockWorkItemRepository)
	mailRepo := new(mockMailRepository)
	workRepo.On("ListByOwner", mock.Anything, "alice", false).Return([]*entity.WorkItem{}, nil)
	mailRepo.On("SendMailWithAttachment", mock.Anything, mock.Anything).Return(apperrors.Unavailable("relay down", nil))

	uc := NewReportUseCase(zap.New(core), workRepo, mailRepo, stubBuilder([]byte("xlsx"), nil), testMailConfig)

	assert.NoError(t, uc.SendActiveReport(context.Background(), "alice"))
	assert.Equal(t, 1, logs.FilterMessage("리포트 메일 발송 실패").Len())
}

func TestReportUseCase_Failures(t *testing.T) {
	t.Run("listing failure", func(t *testing.T) {
		workRepo := new(mockWorkItemRepository)
		mailRepo := new(mockMailRepository)
		workRepo.On("ListByOwner", mock.Anything, "alice", false).Return(nil, apperrors.Unavailable("db down", nil))

		err := NewReportUseCase(zap.NewNop(), workRepo, mailRepo, stubBuilder(nil, nil), testMailConfig).
			SendActiveReport(context.Background(), "alice")

		assert.Equal(t, apperrors.ErrUnavailable, apperrors.CodeOf(err))
		mailRepo.AssertNotCalled(t, "SendMailWithAttachment", mock.Anything, mock.Anything)
	})

	t.Run("build failure", func(t *testing.T) {
		workRepo := new(mockWorkItemRepository)
		mailRepo := new(mockMailRepository)
		workRepo.On("ListByOwner", mock.Anything, "alice", false).Return([]*entity.WorkItem{}, nil)

		err := NewReportUseCase(zap.NewNop(), workRepo, mailRepo, stubBuilder(nil, errors.New("disk full")), testMailConfig).
			SendActiveReport(context.Background(), "alice")

		assert.Equal(t, apperrors.ErrInternal, apperrors.CodeOf(err))
		mailRepo.AssertNotCalled(t, "SendMailWithAttachment", mock.Anything, mock.Anything)
	})

	t.Run("missing caller", func(t *testing.T) {
		err := NewReportUseCase(zap.NewNop(), new(mockWorkItemRepository), new(mockMailRepository), stubBuilder(nil, nil), testMailConfig).
			SendActiveReport(context.Background(), "")

		assert.Equal(t, apperrors.ErrUnauthenticated, apperrors.CodeOf(err))
	})
}
