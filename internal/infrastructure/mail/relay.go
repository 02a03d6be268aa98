package mail

import (
	"context"
	"fmt"

	"github.com/wekeepgrowing/workitem-tracker/internal/config"
	"go.uber.org/zap"
)

// Relay 원본 MIME 메시지를 전달하는 외부 메일 릴레이
type Relay interface {
	SendRaw(ctx context.Context, from string, to []string, raw []byte) error
}

// NewRelay 설정에 맞는 릴레이를 생성합니다.
func NewRelay(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Relay, error) {
	switch cfg.Email.Relay {
	case "ses":
		client, err := NewSESClient(ctx, cfg.AWS)
		if err != nil {
			return nil, err
		}
		logger.Info("SES 메일 릴레이 사용", zap.String("region", cfg.AWS.Region))
		return NewSESRelay(client, logger), nil
	case "smtp":
		logger.Info("SMTP 메일 릴레이 사용", zap.String("host", cfg.Email.SMTPHost), zap.Int("port", cfg.Email.SMTPPort))
		return NewSMTPRelay(SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUser,
			Password: cfg.Email.SMTPPass,
		}, logger), nil
	default:
		return nil, fmt.Errorf("지원하지 않는 메일 릴레이: %q", cfg.Email.Relay)
	}
}
