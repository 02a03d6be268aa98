package identity

import (
	"fmt"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/workitem-tracker/internal/config"
	"go.uber.org/zap"
)

// FromConfig 인증 모드에 맞는 미들웨어 체인 생성
func FromConfig(cfg config.AuthConfig, secureCookies bool, logger *zap.Logger, skipPaths ...string) ([]echo.MiddlewareFunc, error) {
	switch cfg.Mode {
	case "jwt":
		return []echo.MiddlewareFunc{JWTMiddleware(JWTConfig{
			Secret:        cfg.JWTSecret,
			UsernameClaim: cfg.UsernameClaim,
			Logger:        logger,
			SkipPaths:     skipPaths,
		})}, nil
	case "session":
		return []echo.MiddlewareFunc{
			session.Middleware(NewCookieStore(cfg.SessionSecret, secureCookies)),
			SessionMiddleware(SessionConfig{
				Key:       cfg.SessionKey,
				Logger:    logger,
				SkipPaths: skipPaths,
			}),
		}, nil
	default:
		return nil, fmt.Errorf("지원하지 않는 인증 모드: %q", cfg.Mode)
	}
}
