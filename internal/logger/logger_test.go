package logger

import (
	"testing"

	"github.com/deppfellow/blogful/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestGetPgxTraceLogLevel(t *testing.T) {
	assert.Equal(t, tracelog.LogLevelDebug, GetPgxTraceLogLevel(zerolog.DebugLevel))
	assert.Equal(t, tracelog.LogLevelInfo, GetPgxTraceLogLevel(zerolog.InfoLevel))
	assert.Equal(t, tracelog.LogLevelWarn, GetPgxTraceLogLevel(zerolog.WarnLevel))
	assert.Equal(t, tracelog.LogLevelError, GetPgxTraceLogLevel(zerolog.FatalLevel))
	assert.Equal(t, tracelog.LogLevelNone, GetPgxTraceLogLevel(zerolog.Disabled))
}

func TestNewLoggerService_DisabledWithoutLicense(t *testing.T) {
	ls := NewLoggerService(config.DefaultObservabilityConfig())

	assert.Nil(t, ls.GetApplication())
	ls.Shutdown()

	var nilService *LoggerService
	assert.Nil(t, nilService.GetApplication())
}

func TestNewLogger_Level(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	logger := NewLogger(cfg)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}
