package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/kakeibo-cloud/backend/internal/models"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// Statements slower than this are logged as warnings.
const slowThreshold = 200 * time.Millisecond

// logger writes gorm messages to zerolog.
//
// If the context of a statement carries a zerolog logger, e.g. the one
// with the correlation id of a Lambda invocation, it is used instead
// of the base logger.
type logger struct {
	base  zerolog.Logger
	level gorm_logger.LogLevel
}

func newLogger(base zerolog.Logger) *logger {
	return &logger{base: base, level: gorm_logger.Warn}
}

func (l *logger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	return &logger{base: l.base, level: level}
}

func (l *logger) from(ctx context.Context) *zerolog.Logger {
	if ctxLogger := zerolog.Ctx(ctx); ctxLogger.GetLevel() != zerolog.Disabled {
		return ctxLogger
	}
	return &l.base
}

func (l *logger) Info(ctx context.Context, s string, args ...any) {
	if l.level >= gorm_logger.Info {
		l.from(ctx).Info().Msgf(s, args...)
	}
}

func (l *logger) Warn(ctx context.Context, s string, args ...any) {
	if l.level >= gorm_logger.Warn {
		l.from(ctx).Warn().Msgf(s, args...)
	}
}

func (l *logger) Error(ctx context.Context, s string, args ...any) {
	if l.level >= gorm_logger.Error {
		l.from(ctx).Error().Msgf(s, args...)
	}
}

// Trace logs every statement at debug level. Failed statements are
// errors unless the record was simply missing.
func (l *logger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == gorm_logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	log := l.from(ctx)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, models.ErrResourceNotFound):
		log.Error().Err(err).Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg("statement failed")
	case elapsed > slowThreshold:
		log.Warn().Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg("slow statement")
	default:
		log.Debug().Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg("statement")
	}
}
