package identity

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SessionName 쿠키 세션 이름
const SessionName = "session"

// SessionConfig 쿠키 세션 미들웨어 설정
type SessionConfig struct {
	// Key 세션 값에서 호출자 이름을 담은 키
	Key       string
	Logger    *zap.Logger
	SkipPaths []string
}

// NewCookieStore 서명된 쿠키 세션 저장소 생성
func NewCookieStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// SessionMiddleware 세션에서 호출자 이름을 읽어 컨텍스트에 저장.
// echo-contrib session.Middleware가 앞에 등록되어 있어야 합니다.
func SessionMiddleware(config SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipped(c, config.SkipPaths) {
				return next(c)
			}

			sess, err := session.Get(SessionName, c)
			if err != nil {
				resetSession(c, sess)
				config.Logger.Warn("세션 검증 실패", zap.Error(err), zap.String("ip", c.RealIP()))
				return unauthorized(c, "Session expired", "INVALID_SESSION")
			}

			caller, ok := sess.Values[config.Key].(string)
			if !ok || caller == "" {
				return unauthorized(c, "Authentication required", "AUTH_REQUIRED")
			}

			setCaller(c, caller)
			return next(c)
		}
	}
}

func resetSession(c echo.Context, sess *sessions.Session) {
	if sess == nil {
		return
	}
	sess.Options = &sessions.Options{Path: "/", MaxAge: -1}
	sess.Values = map[interface{}]interface{}{}
	_ = sess.Save(c.Request(), c.Response())
}
