package logger

import (
	"io"

	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EchoZapLogger는 echo.Logger 인터페이스를 zap 위에 구현합니다.
type EchoZapLogger struct {
	logger *zap.Logger
	sugar  *zap.SugaredLogger
	prefix string
	level  log.Lvl
}

// NewEchoZapLogger는 zap 로거를 감싼 echo 로거를 생성합니다.
func NewEchoZapLogger(logger *zap.Logger) *EchoZapLogger {
	return &EchoZapLogger{
		logger: logger,
		sugar:  logger.Sugar(),
		level:  toEchoLevel(logger.Level()),
	}
}

func toEchoLevel(level zapcore.Level) log.Lvl {
	switch {
	case level <= zapcore.DebugLevel:
		return log.DEBUG
	case level == zapcore.InfoLevel:
		return log.INFO
	case level == zapcore.WarnLevel:
		return log.WARN
	default:
		return log.ERROR
	}
}

func (l *EchoZapLogger) enabled(level log.Lvl) bool {
	return l.level != log.OFF && level >= l.level
}

// Output은 zap으로 흘려보내는 Writer를 반환합니다.
func (l *EchoZapLogger) Output() io.Writer {
	return &zapWriter{logger: l.logger}
}

// SetOutput은 무시됩니다. 출력 대상은 zap 코어가 결정합니다.
func (l *EchoZapLogger) SetOutput(w io.Writer) {}

func (l *EchoZapLogger) Level() log.Lvl {
	return l.level
}

func (l *EchoZapLogger) SetLevel(v log.Lvl) {
	l.level = v
}

// SetHeader는 무시됩니다.
func (l *EchoZapLogger) SetHeader(h string) {}

func (l *EchoZapLogger) Prefix() string {
	return l.prefix
}

// SetPrefix는 zap 로거 이름으로 반영됩니다.
func (l *EchoZapLogger) SetPrefix(p string) {
	l.prefix = p
	l.sugar = l.logger.Named(p).Sugar()
}

func (l *EchoZapLogger) Print(i ...interface{}) {
	l.sugar.Info(i...)
}

func (l *EchoZapLogger) Printf(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *EchoZapLogger) Printj(j log.JSON) {
	l.sugar.Infow("echo", "json", j)
}

func (l *EchoZapLogger) Debug(i ...interface{}) {
	if l.enabled(log.DEBUG) {
		l.sugar.Debug(i...)
	}
}

func (l *EchoZapLogger) Debugf(format string, args ...interface{}) {
	if l.enabled(log.DEBUG) {
		l.sugar.Debugf(format, args...)
	}
}

func (l *EchoZapLogger) Debugj(j log.JSON) {
	if l.enabled(log.DEBUG) {
		l.sugar.Debugw("echo", "json", j)
	}
}

func (l *EchoZapLogger) Info(i ...interface{}) {
	if l.enabled(log.INFO) {
		l.sugar.Info(i...)
	}
}

func (l *EchoZapLogger) Infof(format string, args ...interface{}) {
	if l.enabled(log.INFO) {
		l.sugar.Infof(format, args...)
	}
}

func (l *EchoZapLogger) Infoj(j log.JSON) {
	if l.enabled(log.INFO) {
		l.sugar.Infow("echo", "json", j)
	}
}

func (l *EchoZapLogger) Warn(i ...interface{}) {
	if l.enabled(log.WARN) {
		l.sugar.Warn(i...)
	}
}

func (l *EchoZapLogger) Warnf(format string, args ...interface{}) {
	if l.enabled(log.WARN) {
		l.sugar.Warnf(format, args...)
	}
}

func (l *EchoZapLogger) Warnj(j log.JSON) {
	if l.enabled(log.WARN) {
		l.sugar.Warnw("echo", "json", j)
	}
}

func (l *EchoZapLogger) Error(i ...interface{}) {
	if l.enabled(log.ERROR) {
		l.sugar.Error(i...)
	}
}

func (l *EchoZapLogger) Errorf(format string, args ...interface{}) {
	if l.enabled(log.ERROR) {
		l.sugar.Errorf(format, args...)
	}
}

func (l *EchoZapLogger) Errorj(j log.JSON) {
	if l.enabled(log.ERROR) {
		l.sugar.Errorw("echo", "json", j)
	}
}

func (l *EchoZapLogger) Fatal(i ...interface{}) {
	l.sugar.Fatal(i...)
}

func (l *EchoZapLogger) Fatalf(format string, args ...interface{}) {
	l.sugar.Fatalf(format, args...)
}

func (l *EchoZapLogger) Fatalj(j log.JSON) {
	l.sugar.Fatalw("echo", "json", j)
}

func (l *EchoZapLogger) Panic(i ...interface{}) {
	l.sugar.Panic(i...)
}

func (l *EchoZapLogger) Panicf(format string, args ...interface{}) {
	l.sugar.Panicf(format, args...)
}

func (l *EchoZapLogger) Panicj(j log.JSON) {
	l.sugar.Panicw("echo", "json", j)
}

type zapWriter struct {
	logger *zap.Logger
}

func (w *zapWriter) Write(p []byte) (int, error) {
	w.logger.Info(string(p))
	return len(p), nil
}
