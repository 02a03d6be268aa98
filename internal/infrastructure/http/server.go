package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/wekeepgrowing/workitem-tracker/pkg/logger"
	"go.uber.org/zap"
)

// HealthPath 인증 없이 접근 가능한 헬스 체크 경로
const HealthPath = "/health"

// Config HTTP 서버 설정
type Config struct {
	Port    string
	Timeout time.Duration
	Debug   bool
}

// Server HTTP 서버 구조체
type Server struct {
	router  *echo.Echo
	server  *http.Server
	logger  *zap.Logger
	address string
}

// requestID nanoid 기반 요청 ID 생성
func requestID() string {
	id, err := gonanoid.New()
	if err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return id
}

// NewServer HTTP 서버 생성
func NewServer(cfg Config, zapLogger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Debug
	e.Validator = NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: requestID}))
	e.Use(logger.NewEchoRequestLogger(zapLogger))
	if cfg.Timeout > 0 {
		e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{Timeout: cfg.Timeout}))
	}

	logger.WithEchoLogger(e, zapLogger)

	e.GET(HealthPath, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	address := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         address,
		Handler:      e,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  2 * cfg.Timeout,
	}

	return &Server{
		router:  e,
		server:  server,
		logger:  zapLogger,
		address: address,
	}
}

// Router Echo 인스턴스 반환
func (s *Server) Router() *echo.Echo {
	return s.router
}

// Group 지정한 미들웨어가 적용된 라우트 그룹 생성
func (s *Server) Group(prefix string, m ...echo.MiddlewareFunc) *echo.Group {
	return s.router.Group(prefix, m...)
}

// Start HTTP 서버 시작. 정상 종료 시 nil을 반환합니다.
func (s *Server) Start() error {
	s.logger.Info("HTTP 서버 시작", zap.String("address", s.address))

	if err := s.router.StartServer(s.server); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP 서버 실행 실패: %w", err)
	}
	return nil
}

// Stop HTTP 서버 종료
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("HTTP 서버 종료 중...")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP 서버 종료 실패: %w", err)
	}

	s.logger.Info("HTTP 서버 종료 완료")
	return nil
}
