// Package log 提供全局日志记录器的初始化和获取功能
// 日志统一写到 stderr 或轮转文件，stdout 只留给分析报告
package log

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yeisme/fsummary/pkg/configs"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger 全局日志记录器类型
type Logger = *zerolog.Logger

var (
	globalLogger Logger
	// consoleOut 控制台日志的输出目标，测试中可替换
	consoleOut io.Writer = os.Stderr
)

// InitLogger 根据日志配置与运行模式创建记录器，并设为全局记录器
func InitLogger(ctx context.Context, config *configs.LogConfig, appConfig *configs.AppConfig) Logger {
	level := levelFor(config, appConfig)
	zerolog.SetGlobalLevel(level)

	var logger zerolog.Logger
	switch {
	case level == zerolog.Disabled:
		logger = zerolog.New(io.Discard)
	case appConfig.Debug:
		// 调试模式附带调用位置与应用名
		logger = zerolog.New(openOutput(config)).With().
			Timestamp().
			Caller().
			Str("app", appConfig.Name).
			Ctx(ctx).
			Logger()
	default:
		logger = zerolog.New(openOutput(config)).With().Timestamp().Logger()
	}

	globalLogger = &logger
	log.Logger = logger
	return &logger
}

// levelFor quiet 优先于 debug，debug 优先于 verbose，最后才是配置中的 level
func levelFor(config *configs.LogConfig, appConfig *configs.AppConfig) zerolog.Level {
	switch {
	case appConfig.Quiet:
		return zerolog.Disabled
	case appConfig.Debug:
		return zerolog.DebugLevel
	case appConfig.Verbose:
		return zerolog.InfoLevel
	default:
		return ParseLevel(config.Level)
	}
}

// openOutput 按 mode 组合控制台与文件输出：console（默认）、file、both
func openOutput(config *configs.LogConfig) io.Writer {
	switch strings.ToLower(config.Mode) {
	case "file":
		if fw, ok := fileOutput(config); ok {
			return fw
		}
		return consoleOutput(config.JSON)
	case "both":
		if fw, ok := fileOutput(config); ok {
			return io.MultiWriter(consoleOutput(config.JSON), fw)
		}
		return consoleOutput(config.JSON)
	default:
		return consoleOutput(config.JSON)
	}
}

func consoleOutput(useJSON bool) io.Writer {
	if useJSON {
		return consoleOut
	}
	return zerolog.ConsoleWriter{Out: consoleOut, TimeFormat: "15:04:05"}
}

// fileOutput 日志目录无法创建时返回 false，调用方退回控制台
func fileOutput(config *configs.LogConfig) (io.Writer, bool) {
	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0755); err != nil {
		return nil, false
	}
	return &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSize, // MB
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge, // days
		Compress:   true,
	}, true
}

// GetLogger 获取全局日志记录器，未初始化时返回仅输出警告的控制台日志
func GetLogger() Logger {
	if globalLogger != nil {
		return globalLogger
	}
	logger := zerolog.New(consoleOutput(false)).Level(zerolog.WarnLevel).With().Timestamp().Logger()
	return &logger
}

// ParseLevel 解析日志级别，空串或无法识别时返回 warn
func ParseLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		return zerolog.WarnLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.WarnLevel
	}
	return lvl
}
