package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/wekeepgrowing/workitem-tracker/internal/config"
	"github.com/wekeepgrowing/workitem-tracker/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const memoryDSN = ":memory:"

// dialector는 드라이버 설정에 맞는 GORM Dialector를 반환합니다.
func dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
		)
		return postgres.Open(dsn), nil
	case "sqlite":
		path := cfg.Path
		if path == "" || path == memoryDSN {
			return sqlite.Open(memoryDSN), nil
		}
		return sqlite.Open(path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"), nil
	default:
		return nil, fmt.Errorf("지원하지 않는 데이터베이스 드라이버: %q", cfg.Driver)
	}
}

// NewDatabase 데이터베이스 연결을 생성하고 연결 풀을 설정합니다.
func NewDatabase(cfg config.DatabaseConfig, logLevel string, zapLogger *zap.Logger) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	gormLogger := logger.NewGormLogger(
		zapLogger,
		logger.GormLevel(logLevel),
		cfg.SlowThreshold,
		true, // ErrRecordNotFound 무시
	)

	db, err := gorm.Open(d, &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("SQL DB 인스턴스 획득 실패: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	// 인메모리 sqlite는 연결마다 별도 DB가 생기므로 단일 연결로 고정
	if cfg.Driver == "sqlite" && (cfg.Path == "" || cfg.Path == memoryDSN) {
		maxOpen = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("데이터베이스 핑 실패: %w", err)
	}

	zapLogger.Info("데이터베이스 연결 성공",
		zap.String("driver", cfg.Driver),
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Name),
		zap.Int("max_open_conns", maxOpen),
		zap.Int("max_idle_conns", cfg.MaxIdleConns),
		zap.Duration("conn_max_lifetime", cfg.ConnMaxLifetime),
	)

	if cfg.AutoMigrate {
		if err := EnsureSchema(db, zapLogger); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Close 연결 풀을 닫습니다.
func Close(db *gorm.DB, zapLogger *zap.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("SQL DB 인스턴스 획득 실패: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("데이터베이스 종료 실패: %w", err)
	}
	zapLogger.Info("데이터베이스 연결 종료")
	return nil
}
