package logging

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/dpletzke/LightBnB/internal/consts"
)

// callerSkip accounts for the wrapping layers (package helper, logger method,
// logWithContext).
const callerSkip = 3

// Config controls the logger output. When Output is "file", File names the
// log file and lumberjack handles rotation; Stdout additionally tees to
// standard output.
type Config struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	Output     string `yaml:"output"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
	Stdout     bool   `yaml:"stdout"`
}

// Logger is the structured logging interface used across the service.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...zap.Field)
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Warn(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
	Fatal(ctx context.Context, msg string, fields ...zap.Field)
	With(fields ...zap.Field) Logger
	Sync() error
}

type zapLogger struct {
	cfg Config
	log *zap.Logger
}

// New builds a zap-backed Logger from cfg.
func New(cfg Config) (Logger, error) {
	encoder := buildEncoder(cfg.Format)

	writeSyncer, err := buildWriteSyncer(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create write syncer: %w", err)
	}

	level := parseLevel(cfg.Level)

	log := zap.New(
		zapcore.NewCore(encoder, writeSyncer, level),
		zap.AddCaller(),
		zap.AddCallerSkip(callerSkip),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	return &zapLogger{cfg: cfg, log: log}, nil
}

func buildEncoder(format string) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if format == "json" {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func buildWriteSyncer(cfg Config) (zapcore.WriteSyncer, error) {
	switch strings.ToLower(cfg.Output) {
	case "stdout", "":
		return zapcore.AddSync(os.Stdout), nil
	case "stderr":
		return zapcore.AddSync(os.Stderr), nil
	case "file":
		return buildFileWriteSyncer(cfg)
	default:
		// not a standard keyword, treat as a plain file path
		file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return zapcore.AddSync(file), nil
	}
}

func buildFileWriteSyncer(cfg Config) (zapcore.WriteSyncer, error) {
	if cfg.File == "" {
		return nil, fmt.Errorf("logging.file is required when output is 'file'")
	}
	lumber := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
		LocalTime:  true,
	}
	if cfg.Stdout {
		return zapcore.NewMultiWriteSyncer(zapcore.AddSync(lumber), zapcore.AddSync(os.Stdout)), nil
	}
	return zapcore.AddSync(lumber), nil
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	case "FATAL":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *zapLogger) Debug(ctx context.Context, msg string, fields ...zap.Field) {
	l.logWithContext(ctx, zapcore.DebugLevel, msg, fields...)
}

func (l *zapLogger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	l.logWithContext(ctx, zapcore.InfoLevel, msg, fields...)
}

func (l *zapLogger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	l.logWithContext(ctx, zapcore.WarnLevel, msg, fields...)
}

func (l *zapLogger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	l.logWithContext(ctx, zapcore.ErrorLevel, msg, fields...)
}

func (l *zapLogger) Fatal(ctx context.Context, msg string, fields ...zap.Field) {
	l.logWithContext(ctx, zapcore.FatalLevel, msg, fields...)
	os.Exit(1)
}

func (l *zapLogger) With(fields ...zap.Field) Logger {
	return &zapLogger{cfg: l.cfg, log: l.log.With(fields...)}
}

func (l *zapLogger) Sync() error {
	if l.log != nil {
		return l.log.Sync()
	}
	return nil
}

func hasTraceField(fields []zap.Field) bool {
	for _, f := range fields {
		switch f.Key {
		case "trace_id", "trace-id":
			return true
		}
	}
	return false
}

func (l *zapLogger) logWithContext(ctx context.Context, level zapcore.Level, msg string, fields ...zap.Field) {
	if l.log == nil {
		return
	}
	traceID := extractTraceID(ctx)
	if traceID != "" && !hasTraceField(fields) {
		fields = append([]zap.Field{zap.String(consts.KeyTraceID, traceID)}, fields...)
	}

	switch level {
	case zapcore.DebugLevel:
		l.log.Debug(msg, fields...)
	case zapcore.InfoLevel:
		l.log.Info(msg, fields...)
	case zapcore.WarnLevel:
		l.log.Warn(msg, fields...)
	case zapcore.ErrorLevel:
		l.log.Error(msg, fields...)
	case zapcore.FatalLevel:
		l.log.Fatal(msg, fields...)
	}
}

// extractTraceID prefers the OTel span trace id, then legacy context keys,
// then generates a fresh id so every line carries one.
func extractTraceID(ctx context.Context) string {
	if ctx == nil {
		return uuid.New().String()
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() && sc.TraceID().IsValid() {
		return sc.TraceID().String()
	}

	if v := ctx.Value(consts.KeyTraceID); v != nil {
		if id, ok := v.(string); ok && id != "" {
			return id
		}
	}

	keys := []string{"traceId", "trace-id", "x-trace-id", "request-id"}
	for _, k := range keys {
		if v := ctx.Value(k); v != nil {
			if id, ok := v.(string); ok && id != "" {
				return id
			}
		}
	}

	return uuid.New().String()
}
