package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "photoverify/internal/delivery/context"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger sends GORM output to slog. Statements issued while serving a request
// are logged with that request's logger.
type gormLogger struct {
	base  *slog.Logger
	level logger.LogLevel
	slow  time.Duration
}

func newGormLogger(base *slog.Logger, debug bool) logger.Interface {
	level := logger.Warn
	if debug {
		level = logger.Info
	}

	return &gormLogger{base: base, level: level, slow: slowQueryThreshold}
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level

	return &clone
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < threshold {
		return
	}
	l.loggerFor(ctx).LogAttrs(ctx, level, "GORM", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed statements, slow statements, and in debug mode every statement.
// Missing records are a normal lookup outcome and are not logged.
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.statement(ctx, slog.LevelError, "GORM query failed", fc, elapsed, slog.String("error", err.Error()))
	case l.slow > 0 && elapsed > l.slow && l.level >= logger.Warn:
		l.statement(ctx, slog.LevelWarn, "GORM slow query", fc, elapsed, slog.Duration("slow_threshold", l.slow))
	case l.level >= logger.Info:
		l.statement(ctx, slog.LevelDebug, "GORM query", fc, elapsed)
	}
}

func (l *gormLogger) statement(ctx context.Context, level slog.Level, msg string, fc func() (string, int64), elapsed time.Duration, extra ...slog.Attr) {
	sql, rows := fc()
	attrs := append([]slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}, extra...)

	l.loggerFor(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormLogger) loggerFor(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
