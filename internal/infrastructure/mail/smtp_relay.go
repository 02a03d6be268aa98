package mail

import (
	"bytes"
	"context"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SMTPConfig SMTP 설정 구조체
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Dialer SMTP 연결을 여는 인터페이스. *gomail.Dialer가 구현합니다.
type Dialer interface {
	Dial() (gomail.SendCloser, error)
}

// SMTPRelay gomail 기반 SMTP 릴레이
type SMTPRelay struct {
	dialer Dialer
	logger *zap.Logger
}

// NewSMTPRelay SMTP 릴레이 생성
func NewSMTPRelay(cfg SMTPConfig, logger *zap.Logger) *SMTPRelay {
	return NewSMTPRelayWithDialer(gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), logger)
}

// NewSMTPRelayWithDialer 지정한 Dialer로 SMTP 릴레이 생성
func NewSMTPRelayWithDialer(dialer Dialer, logger *zap.Logger) *SMTPRelay {
	return &SMTPRelay{dialer: dialer, logger: logger}
}

// SendRaw 원본 MIME 메시지 발송. 요청마다 연결을 열고 닫습니다.
func (r *SMTPRelay) SendRaw(ctx context.Context, from string, to []string, raw []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sender, err := r.dialer.Dial()
	if err != nil {
		r.logger.Error("SMTP 연결 실패", zap.Error(err))
		return fmt.Errorf("SMTP 연결 실패: %w", err)
	}
	defer sender.Close()

	if err := sender.Send(from, to, bytes.NewReader(raw)); err != nil {
		r.logger.Error("SMTP 메일 발송 실패", zap.Strings("to", to), zap.Error(err))
		return fmt.Errorf("SMTP 메일 발송 실패: %w", err)
	}

	r.logger.Info("SMTP 메일 발송 성공", zap.Strings("to", to), zap.Int("size", len(raw)))
	return nil
}
