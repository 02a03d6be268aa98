package db

import (
	"fmt"

	"github.com/wekeepgrowing/workitem-tracker/internal/infrastructure/db/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EnsureSchema work 테이블이 없으면 생성합니다. 로컬 실행과 테스트용입니다.
func EnsureSchema(db *gorm.DB, zapLogger *zap.Logger) error {
	if err := db.AutoMigrate(&model.WorkItemModel{}); err != nil {
		zapLogger.Error("스키마 생성 실패", zap.Error(err))
		return fmt.Errorf("스키마 생성 실패: %w", err)
	}
	zapLogger.Info("스키마 확인 완료", zap.String("table", model.WorkItemModel{}.TableName()))
	return nil
}
