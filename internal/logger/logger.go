// Package logger configures the application's logging and APM.
//
// It builds the zerolog logger used everywhere, a quieter logger for pgx
// query tracing, and, when a license key is configured, a New Relic
// application that receives forwarded logs and database segments.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/deppfellow/blogful/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// LoggerService owns the optional New Relic application.
// A nil application means APM is disabled.
type LoggerService struct {
	nrApp *newrelic.Application
}

// NewLoggerService starts New Relic when a license key is present.
// Startup problems are reported on stderr and leave APM disabled; they never
// stop the service.
func NewLoggerService(cfg *config.ObservabilityConfig) *LoggerService {
	service := &LoggerService{}

	if !cfg.NewRelicEnabled() {
		return service
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.ServiceName),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(cfg.NewRelic.AppLogForwardingEnabled),
		newrelic.ConfigDistributedTracerEnabled(cfg.NewRelic.DistributedTracingEnabled),
		newrelic.ConfigCodeLevelMetricsEnabled(true),
	}
	if cfg.NewRelic.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stdout))
	}

	app, err := newrelic.NewApplication(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize New Relic: %v\n", err)
		return service
	}

	service.nrApp = app
	return service
}

// GetApplication returns the New Relic application, or nil when disabled.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	if ls == nil {
		return nil
	}
	return ls.nrApp
}

// Shutdown flushes pending New Relic data.
func (ls *LoggerService) Shutdown() {
	if ls.GetApplication() != nil {
		ls.nrApp.Shutdown(10 * time.Second)
	}
}

// NewLogger builds a logger without APM.
func NewLogger(cfg *config.ObservabilityConfig) zerolog.Logger {
	return NewLoggerWithService(cfg, nil)
}

// NewLoggerWithService builds the application logger.
//
//   - production, or format=json: JSON lines on stdout
//   - otherwise: human-readable console output
//   - with New Relic: JSON output is also forwarded to the agent
func NewLoggerWithService(cfg *config.ObservabilityConfig, loggerService *LoggerService) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var writer io.Writer
	if cfg.IsProduction() || cfg.Logging.Format == "json" {
		writer = os.Stdout
		if app := loggerService.GetApplication(); app != nil {
			writer = zerologWriter.New(os.Stdout, app)
		}
	} else {
		writer = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger()
}

// NewPgxLogger builds the logger handed to pgx's tracelog. SQL and
// arguments are printed on their own so they stay readable locally.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
		FormatFieldValue: func(i any) string {
			switch v := i.(type) {
			case string:
				return v
			case []any:
				return fmt.Sprintf("%v", v)
			default:
				return fmt.Sprint(v)
			}
		},
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("component", "database").
		Logger()
}

// GetPgxTraceLogLevel maps a zerolog level onto the tracelog level scale.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}

// WithTraceContext adds New Relic trace and span ids to logger.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}

	metadata := txn.GetTraceMetadata()
	return logger.With().
		Str("trace.id", metadata.TraceID).
		Str("span.id", metadata.SpanID).
		Logger()
}
