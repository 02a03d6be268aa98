package config

import (
	"fmt"
	"time"

	"github.com/wekeepgrowing/workitem-tracker/pkg/config"
	"github.com/wekeepgrowing/workitem-tracker/pkg/logger"
	"go.uber.org/zap"
)

// ServiceName은 설정 파일 이름과 환경 변수 접두사로 사용됩니다.
const ServiceName = "workitem"

// HTTPConfig HTTP 서버 설정
type HTTPConfig struct {
	Port    string
	Timeout time.Duration
	Debug   bool
}

// DatabaseConfig 데이터베이스 설정
type DatabaseConfig struct {
	// Driver postgres 또는 sqlite
	Driver   string
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string
	// Path sqlite 파일 경로 (":memory:" 허용)
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
	AutoMigrate     bool
}

// LogConfig 로그 설정
type LogConfig struct {
	Level    string
	Format   string
	Output   string
	FilePath string
}

// AuthConfig 호출자 식별 설정
type AuthConfig struct {
	// Mode jwt 또는 session
	Mode          string
	JWTSecret     string
	UsernameClaim string
	SessionSecret string
	SessionKey    string
}

// EmailConfig 리포트 메일 설정
type EmailConfig struct {
	// Relay ses 또는 smtp
	Relay          string
	Sender         string
	Recipients     []string
	Subject        string
	TextBody       string
	HTMLBody       string
	AttachmentName string
	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPass       string
}

// AWSConfig AWS 자격 증명 설정
type AWSConfig struct {
	Region    string
	AccessKey string
	SecretKey string
}

// Config 작업 항목 서비스 설정
type Config struct {
	Service struct {
		Name    string
		Version string
	}
	HTTP     HTTPConfig
	Database DatabaseConfig
	Log      LogConfig
	Auth     AuthConfig
	Email    EmailConfig
	AWS      AWSConfig
}

// 기본값
var defaults = map[string]interface{}{
	"service.name":               ServiceName,
	"service.version":            "dev",
	"server.http.port":           "8080",
	"server.http.timeout":        "30s",
	"database.driver":            "postgres",
	"database.port":              5432,
	"database.sslmode":           "disable",
	"database.max_open_conns":    25,
	"database.max_idle_conns":    5,
	"database.conn_max_lifetime": "5m",
	"database.slow_threshold":    "200ms",
	"log.level":                  "info",
	"log.format":                 "json",
	"log.output":                 "stdout",
	"auth.mode":                  "jwt",
	"auth.username_claim":        "preferred_username",
	"auth.session_key":           "username",
	"email.relay":                "ses",
	"email.subject":              "Weekly AWS Status Report",
	"email.text_body":            "Hello,\r\nPlease see the attached file for a weekly update.",
	"email.html_body":            "<!DOCTYPE html><html><head></head><body><h1>Hello!</h1><p>Please see the attached file for a report that analyzes AWS work items.</p></body></html>",
	"email.attachment_name":      "WorkReport.xlsx",
	"email.smtp_port":            587,
	"aws.region":                 "us-east-1",
}

// Load는 설정 파일과 환경 변수로부터 설정을 로드합니다.
func Load(opts ...config.Option) (*Config, error) {
	cfg, err := config.Load(ServiceName, append([]config.Option{config.WithDefaults(defaults)}, opts...)...)
	if err != nil {
		return nil, err
	}

	c := &Config{}
	c.Service.Name = cfg.GetString("service.name")
	c.Service.Version = cfg.GetString("service.version")

	c.HTTP = HTTPConfig{
		Port:    cfg.GetString("server.http.port"),
		Timeout: cfg.GetDuration("server.http.timeout"),
		Debug:   cfg.GetBool("server.http.debug"),
	}

	c.Database = DatabaseConfig{
		Driver:          cfg.GetString("database.driver"),
		Host:            cfg.GetString("database.host"),
		Port:            cfg.GetInt("database.port"),
		Name:            cfg.GetString("database.name"),
		User:            cfg.GetString("database.user"),
		Password:        cfg.GetString("database.password"),
		SSLMode:         cfg.GetString("database.sslmode"),
		Path:            cfg.GetString("database.path"),
		MaxOpenConns:    cfg.GetInt("database.max_open_conns"),
		MaxIdleConns:    cfg.GetInt("database.max_idle_conns"),
		ConnMaxLifetime: cfg.GetDuration("database.conn_max_lifetime"),
		SlowThreshold:   cfg.GetDuration("database.slow_threshold"),
		AutoMigrate:     cfg.GetBool("database.auto_migrate"),
	}

	c.Log = LogConfig{
		Level:    cfg.GetString("log.level"),
		Format:   cfg.GetString("log.format"),
		Output:   cfg.GetString("log.output"),
		FilePath: cfg.GetString("log.file_path"),
	}

	c.Auth = AuthConfig{
		Mode:          cfg.GetString("auth.mode"),
		JWTSecret:     cfg.GetString("auth.jwt_secret"),
		UsernameClaim: cfg.GetString("auth.username_claim"),
		SessionSecret: cfg.GetString("auth.session_secret"),
		SessionKey:    cfg.GetString("auth.session_key"),
	}

	c.Email = EmailConfig{
		Relay:          cfg.GetString("email.relay"),
		Sender:         cfg.GetString("email.sender"),
		Recipients:     cfg.GetStringSlice("email.recipients"),
		Subject:        cfg.GetString("email.subject"),
		TextBody:       cfg.GetString("email.text_body"),
		HTMLBody:       cfg.GetString("email.html_body"),
		AttachmentName: cfg.GetString("email.attachment_name"),
		SMTPHost:       cfg.GetString("email.smtp_host"),
		SMTPPort:       cfg.GetInt("email.smtp_port"),
		SMTPUser:       cfg.GetString("email.smtp_user"),
		SMTPPass:       cfg.GetString("email.smtp_pass"),
	}

	c.AWS = AWSConfig{
		Region:    cfg.GetString("aws.region"),
		AccessKey: cfg.GetString("aws.access_key"),
		SecretKey: cfg.GetString("aws.secret_key"),
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate는 조합이 맞지 않는 설정을 거부합니다.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("지원하지 않는 데이터베이스 드라이버: %q", c.Database.Driver)
	}

	switch c.Auth.Mode {
	case "jwt":
		if c.Auth.JWTSecret == "" {
			return fmt.Errorf("auth.jwt_secret이 필요합니다")
		}
	case "session":
		if c.Auth.SessionSecret == "" {
			return fmt.Errorf("auth.session_secret이 필요합니다")
		}
	default:
		return fmt.Errorf("지원하지 않는 인증 모드: %q", c.Auth.Mode)
	}

	switch c.Email.Relay {
	case "ses", "smtp":
	default:
		return fmt.Errorf("지원하지 않는 메일 릴레이: %q", c.Email.Relay)
	}
	return nil
}

// NewLogger는 로그 설정으로 zap 로거를 생성합니다.
func (c *Config) NewLogger() (*zap.Logger, error) {
	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:       c.Log.Level,
		Format:      c.Log.Format,
		Output:      c.Log.Output,
		FilePath:    c.Log.FilePath,
		Development: c.HTTP.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("로거 생성 실패: %w", err)
	}
	return zapLogger.With(zap.String("service", c.Service.Name), zap.String("version", c.Service.Version)), nil
}
