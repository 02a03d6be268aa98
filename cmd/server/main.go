package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/wekeepgrowing/workitem-tracker/internal/adapter/handler/http"
	"github.com/wekeepgrowing/workitem-tracker/internal/adapter/repository"
	"github.com/wekeepgrowing/workitem-tracker/internal/config"
	"github.com/wekeepgrowing/workitem-tracker/internal/infrastructure/db"
	httpserver "github.com/wekeepgrowing/workitem-tracker/internal/infrastructure/http"
	"github.com/wekeepgrowing/workitem-tracker/internal/infrastructure/mail"
	"github.com/wekeepgrowing/workitem-tracker/internal/middleware/identity"
	"github.com/wekeepgrowing/workitem-tracker/internal/usecase"
	pkgconfig "github.com/wekeepgrowing/workitem-tracker/pkg/config"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app 명령 실행에 필요한 의존성 묶음
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	db       *gorm.DB
	useCases *usecase.UseCases
}

func (a *app) close() {
	if err := db.Close(a.db, a.logger); err != nil {
		a.logger.Error("데이터베이스 종료 오류", zap.Error(err))
	}
	_ = a.logger.Sync()
}

// bootstrap 설정, 로거, 데이터베이스, 메일 릴레이, 유스케이스를 순서대로 초기화
func bootstrap(ctx context.Context, configPath string) (*app, error) {
	var opts []pkgconfig.Option
	if configPath != "" {
		opts = append(opts, pkgconfig.WithPath(configPath))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, fmt.Errorf("설정 로드 실패: %w", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, err
	}

	database, err := db.NewDatabase(cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		return nil, fmt.Errorf("데이터베이스 초기화 실패: %w", err)
	}

	relay, err := mail.NewRelay(ctx, cfg, logger)
	if err != nil {
		_ = db.Close(database, logger)
		return nil, fmt.Errorf("메일 릴레이 초기화 실패: %w", err)
	}

	repositories := repository.InitRepositories(database, relay)

	return &app{
		cfg:      cfg,
		logger:   logger,
		db:       database,
		useCases: usecase.SetupUseCases(logger, cfg, repositories),
	}, nil
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "workitem",
		Short:         "Work item tracker service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "directory containing workitem.yaml")

	root.AddCommand(
		newServeCmd(&configPath),
		newSendReportCmd(&configPath),
	)
	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

func newSendReportCmd(configPath *string) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "send-report",
		Short: "Email the active work item report of one owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := bootstrap(ctx, *configPath)
			if err != nil {
				log.Printf("%v", err)
				return err
			}
			defer a.close()

			if err := a.useCases.Report.SendActiveReport(ctx, owner); err != nil {
				a.logger.Error("리포트 생성 실패", zap.String("owner", owner), zap.Error(err))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), http.ReportCreatedMessage)
			return nil
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "owner whose active items are reported")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}

func runServe(ctx context.Context, configPath string) error {
	// 1. 의존성 초기화
	a, err := bootstrap(ctx, configPath)
	if err != nil {
		log.Printf("%v", err)
		return err
	}
	defer a.close()

	a.logger.Info("작업 항목 서비스를 시작합니다...",
		zap.String("service", a.cfg.Service.Name),
		zap.String("version", a.cfg.Service.Version),
	)

	// 2. HTTP 서버 생성
	server := httpserver.NewServer(httpserver.Config{
		Port:    a.cfg.HTTP.Port,
		Timeout: a.cfg.HTTP.Timeout,
		Debug:   a.cfg.HTTP.Debug,
	}, a.logger)

	// 3. 호출자 식별 미들웨어와 라우트 등록
	middlewares, err := identity.FromConfig(a.cfg.Auth, !a.cfg.HTTP.Debug, a.logger, httpserver.HealthPath)
	if err != nil {
		a.logger.Error("인증 미들웨어 생성 실패", zap.Error(err))
		return err
	}
	handler := http.NewWorkItemHandler(a.useCases.WorkItem, a.useCases.Report, a.logger)
	handler.RegisterRoutes(server.Group("", middlewares...))

	// 4. 서버 시작
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	// 5. 그레이스풀 종료를 위한 시그널 처리
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			a.logger.Error("HTTP 서버 종료", zap.Error(err))
			return err
		}
		return nil
	case <-quit:
	}
	a.logger.Info("서버를 종료합니다...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		a.logger.Error("HTTP 서버 종료 오류", zap.Error(err))
		return err
	}

	a.logger.Info("서버가 정상적으로 종료되었습니다")
	return nil
}
