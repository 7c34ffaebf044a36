package main

import (
	"context"
	"log/slog"
	"os"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tides-game/tides-api/internal/config"
)

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// configureSlog points the package-level slog used by the orchestrators at
// the same level and format as the server logger
func configureSlog(cfg config.LoggingConfig) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// interceptorLogger adapts zap to the grpc middleware logger
func interceptorLogger(l *zap.Logger) grpc_logging.Logger {
	sugar := l.Sugar()
	return grpc_logging.LoggerFunc(func(_ context.Context, level grpc_logging.Level, msg string, fields ...any) {
		switch level {
		case grpc_logging.LevelDebug:
			sugar.Debugw(msg, fields...)
		case grpc_logging.LevelWarn:
			sugar.Warnw(msg, fields...)
		case grpc_logging.LevelError:
			sugar.Errorw(msg, fields...)
		default:
			sugar.Infow(msg, fields...)
		}
	})
}
