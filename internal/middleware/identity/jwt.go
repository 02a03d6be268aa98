package identity

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// JWTConfig Bearer 토큰 미들웨어 설정
type JWTConfig struct {
	Secret string
	// UsernameClaim 호출자 이름을 담은 클레임. 없으면 sub를 사용합니다.
	UsernameClaim string
	Logger        *zap.Logger
	SkipPaths     []string
}

// JWTMiddleware HMAC 서명 Bearer 토큰을 검증하고 호출자 이름을 컨텍스트에 저장
func JWTMiddleware(config JWTConfig) echo.MiddlewareFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Secret), nil
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipped(c, config.SkipPaths) {
				return next(c)
			}
			path := c.Request().URL.Path

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				config.Logger.Warn("Authorization 헤더 없음", zap.String("path", path))
				return unauthorized(c, "Authorization header required", "MISSING_AUTH_HEADER")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				config.Logger.Warn("Authorization 헤더 형식 오류", zap.String("path", path))
				return unauthorized(c, "Invalid authorization header format. Expected: Bearer <token>", "INVALID_AUTH_FORMAT")
			}

			claims := jwt.MapClaims{}
			token, err := parser.ParseWithClaims(tokenString, claims, keyFunc)
			if err != nil || !token.Valid {
				config.Logger.Warn("JWT 검증 실패", zap.Error(err), zap.String("path", path))
				return unauthorized(c, "Invalid or expired token", "INVALID_TOKEN")
			}

			caller := usernameFromClaims(claims, config.UsernameClaim)
			if caller == "" {
				config.Logger.Warn("JWT에 사용자 이름 클레임 없음",
					zap.String("claim", config.UsernameClaim),
					zap.String("path", path))
				return unauthorized(c, "Invalid token claims", "INVALID_CLAIMS")
			}

			setCaller(c, caller)
			config.Logger.Debug("호출자 인증 완료", zap.String("caller", caller), zap.String("path", path))
			return next(c)
		}
	}
}

func usernameFromClaims(claims jwt.MapClaims, claim string) string {
	if claim != "" {
		if v, ok := claims[claim].(string); ok && v != "" {
			return v
		}
	}
	sub, _ := claims.GetSubject()
	return sub
}
