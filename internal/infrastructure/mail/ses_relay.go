package mail

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/wekeepgrowing/workitem-tracker/internal/config"
	"go.uber.org/zap"
)

// SESAPI SendRawEmail만 사용하는 SES 클라이언트 인터페이스
type SESAPI interface {
	SendRawEmail(ctx context.Context, params *ses.SendRawEmailInput, optFns ...func(*ses.Options)) (*ses.SendRawEmailOutput, error)
}

// NewSESClient SES 클라이언트 생성. 액세스 키가 없으면 기본 자격 증명 체인을 사용합니다.
func NewSESClient(ctx context.Context, cfg config.AWSConfig) (*ses.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("AWS 설정 로드 실패: %w", err)
	}
	return ses.NewFromConfig(awsCfg), nil
}

// SESRelay AWS SES SendRawEmail 릴레이
type SESRelay struct {
	client SESAPI
	logger *zap.Logger
}

// NewSESRelay SES 릴레이 생성
func NewSESRelay(client SESAPI, logger *zap.Logger) *SESRelay {
	return &SESRelay{client: client, logger: logger}
}

// SendRaw 원본 MIME 메시지 발송
func (r *SESRelay) SendRaw(ctx context.Context, from string, to []string, raw []byte) error {
	out, err := r.client.SendRawEmail(ctx, &ses.SendRawEmailInput{
		Source:       aws.String(from),
		Destinations: to,
		RawMessage:   &types.RawMessage{Data: raw},
	})
	if err != nil {
		r.logger.Error("SES 메일 발송 실패", zap.Strings("to", to), zap.Error(err))
		return fmt.Errorf("SES 메일 발송 실패: %w", err)
	}

	r.logger.Info("SES 메일 발송 성공",
		zap.Strings("to", to),
		zap.String("message_id", aws.ToString(out.MessageId)),
		zap.Int("size", len(raw)),
	)
	return nil
}
