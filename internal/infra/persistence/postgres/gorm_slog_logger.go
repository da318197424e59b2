package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"foodtruck/config"
	deliverycontext "foodtruck/internal/delivery/context"
	"foodtruck/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// sqlLogger sends GORM output to the logger scoped to the current request or
// sweep run, so statements can be traced back to the tenant that caused them.
type sqlLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &sqlLogger{
		base:          base,
		level:         level,
		slowThreshold: slowQueryThreshold,
	}
}

func (l *sqlLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *sqlLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *sqlLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *sqlLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args)
}

// Trace reports failed statements, then slow ones, then everything in debug.
// A missing row is the repository's ErrTenantNotFound, not a failure.
func (l *sqlLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)

	switch {
	case failed && l.level >= logger.Error:
		l.statement(ctx, slog.LevelError, "SQL statement failed", fc, elapsed, slog.String("error", err.Error()))
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.statement(ctx, slog.LevelWarn, "Slow SQL statement", fc, elapsed, slog.Duration("threshold", l.slowThreshold))
	case l.level >= logger.Info:
		l.statement(ctx, slog.LevelDebug, "SQL statement", fc, elapsed)
	}
}

func (l *sqlLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.base == nil || l.level < threshold {
		return
	}

	l.scoped(ctx).LogAttrs(ctx, level, "GORM", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *sqlLogger) statement(ctx context.Context, level slog.Level, msg string, fc func() (string, int64), elapsed time.Duration, extra ...slog.Attr) {
	sql, rows := fc()

	attrs := append([]slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}, extra...)

	l.scoped(ctx).LogAttrs(ctx, level, msg, attrs...)
}

// scoped prefers the logger carried in ctx, which already holds request_id,
// and adds the tenant when one is known.
func (l *sqlLogger) scoped(ctx context.Context) *slog.Logger {
	log := deliverycontext.GetLoggerOrDefault(ctx, l.base)
	if log == l.base {
		if id := deliverycontext.GetRequestIDFromContext(ctx); id != "" {
			log = log.With(slog.String("request_id", id))
		}
	}

	if tenantID, ok := deliverycontext.GetTenantIDFromContext(ctx); ok {
		log = log.With(slog.String("tenant_id", tenantID.String()))
	}

	return log
}
