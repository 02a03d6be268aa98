package interfaces

import "context"

// ReportUseCase 리포트 메일 유스케이스
type ReportUseCase interface {
	// SendActiveReport 활성 작업 항목 리포트를 메일로 발송
	SendActiveReport(ctx context.Context, owner string) error
}
