// Package config는 viper 기반 설정 로딩을 제공합니다.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config는 설정 값 조회 메서드를 정의합니다.
type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	GetStringSlice(key string) []string
	IsSet(key string) bool
	GetAll() map[string]interface{}
}

type viperConfig struct {
	v *viper.Viper
}

func (c *viperConfig) GetString(key string) string          { return c.v.GetString(key) }
func (c *viperConfig) GetInt(key string) int                { return c.v.GetInt(key) }
func (c *viperConfig) GetBool(key string) bool              { return c.v.GetBool(key) }
func (c *viperConfig) GetDuration(key string) time.Duration { return c.v.GetDuration(key) }
func (c *viperConfig) GetStringSlice(key string) []string   { return c.v.GetStringSlice(key) }
func (c *viperConfig) IsSet(key string) bool                { return c.v.IsSet(key) }
func (c *viperConfig) GetAll() map[string]interface{}       { return c.v.AllSettings() }

// 설정 디렉토리 경로
const configDir = "configs"

type options struct {
	path     string
	defaults map[string]interface{}
}

// Option은 Load 동작을 조정합니다.
type Option func(*options)

// WithPath는 CONFIG_PATH 환경 변수보다 우선하는 설정 디렉토리를 지정합니다.
func WithPath(path string) Option {
	return func(o *options) { o.path = path }
}

// WithDefaults는 설정 파일과 환경 변수에 없는 키의 기본값을 지정합니다.
func WithDefaults(defaults map[string]interface{}) Option {
	return func(o *options) { o.defaults = defaults }
}

// Load는 서비스 이름에 해당하는 설정 파일을 로드합니다.
// 탐색 순서: WithPath → CONFIG_PATH → configs/{APP_ENV} → configs/example.
// 환경 변수 {SERVICE}_{SECTION}_{KEY}가 파일 값을 덮어씁니다.
func Load(serviceName string, opts ...Option) (Config, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName(serviceName)

	for key, value := range o.defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(strings.ToUpper(serviceName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := o.path
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	if configPath == "" {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "dev"
		}
		configPath = filepath.Join(configDir, env)
	}
	v.AddConfigPath(configPath)

	if err := v.ReadInConfig(); err != nil {
		// configs/example 디렉토리의 예제 설정으로 재시도
		v.AddConfigPath(filepath.Join(configDir, "example"))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("설정 파일 로드 실패: %w", err)
		}
	}

	return &viperConfig{v: v}, nil
}
