package logging

import (
	"strings"
	"time"

	gormlogger "gorm.io/gorm/logger"
)

type gormWriter struct{}

func (gormWriter) Printf(format string, args ...interface{}) {
	l := Logger()
	l.Debug().Str("component", "gorm").Msgf(strings.TrimSpace(format), args...)
}

// GormLogger routes SQL logging through zerolog at debug level. Statements are
// only traced when the service runs at debug or trace.
func GormLogger(level string) gormlogger.Interface {
	lvl := gormlogger.Warn
	if strings.EqualFold(level, "debug") || strings.EqualFold(level, "trace") {
		lvl = gormlogger.Info
	}
	return gormlogger.New(gormWriter{}, gormlogger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  lvl,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
