// Package database owns the PostgreSQL connection pool and the schema.
//
// It handles:
//   - creating a pgx connection pool (pgxpool) from config
//   - wiring query tracing: local SQL logs, slow-query warnings and
//     New Relic segments
//   - applying the embedded tern migrations
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/blogful/internal/config"
	loggerConfig "github.com/deppfellow/blogful/internal/logger"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/rs/zerolog"
)

// Database wraps the pgx connection pool and a logger.
type Database struct {
	Pool *pgxpool.Pool
	log  *zerolog.Logger
}

// queryTracer is the subset of pgx.QueryTracer every tracer here implements.
type queryTracer interface {
	TraceQueryStart(context.Context, *pgx.Conn, pgx.TraceQueryStartData) context.Context
	TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData)
}

// multiTracer fans a query out to several tracers, since pgx accepts
// only one. Start contexts are threaded through in order.
type multiTracer struct {
	tracers []queryTracer
}

func (mt *multiTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, t := range mt.tracers {
		ctx = t.TraceQueryStart(ctx, conn, data)
	}
	return ctx
}

func (mt *multiTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, t := range mt.tracers {
		t.TraceQueryEnd(ctx, conn, data)
	}
}

type slowQueryKey struct{}

type slowQueryStart struct {
	sql   string
	start time.Time
}

// slowQueryTracer warns about statements that run longer than threshold.
type slowQueryTracer struct {
	log       *zerolog.Logger
	threshold time.Duration
	now       func() time.Time
}

func newSlowQueryTracer(logger *zerolog.Logger, threshold time.Duration) *slowQueryTracer {
	return &slowQueryTracer{log: logger, threshold: threshold, now: time.Now}
}

func (t *slowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, slowQueryKey{}, slowQueryStart{sql: data.SQL, start: t.now()})
}

func (t *slowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	started, ok := ctx.Value(slowQueryKey{}).(slowQueryStart)
	if !ok {
		return
	}

	elapsed := t.now().Sub(started.start)
	if elapsed < t.threshold {
		return
	}

	event := t.log.Warn().
		Str("sql", started.sql).
		Dur("duration", elapsed).
		Dur("threshold", t.threshold)
	if data.Err != nil {
		event = event.Err(data.Err)
	}
	event.Msg("slow query")
}

// DatabasePingTimeout is how long startup waits for the first ping.
const DatabasePingTimeout = 10 * time.Second

// New creates a PostgreSQL connection pool with instrumentation and pings it.
//
// Tracers attached, in order:
//   - nrpgx5 when New Relic is running
//   - the slow-query tracer when a threshold is configured
//   - tracelog SQL logging in the local environment
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	pgxPoolConfig, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	applyPoolTuning(pgxPoolConfig, cfg.Database)

	var tracers []queryTracer

	if loggerService.GetApplication() != nil {
		tracers = append(tracers, nrpgx5.NewTracer())
	}

	if threshold := cfg.Observability.Logging.SlowQueryThreshold; threshold > 0 {
		tracers = append(tracers, newSlowQueryTracer(logger, threshold))
	}

	if cfg.IsLocal() {
		globalLevel := logger.GetLevel()
		pgxLogger := loggerConfig.NewPgxLogger(globalLevel)

		tracers = append(tracers, &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(pgxLogger),
			LogLevel: loggerConfig.GetPgxTraceLogLevel(globalLevel),
		})
	}

	switch len(tracers) {
	case 0:
	case 1:
		pgxPoolConfig.ConnConfig.Tracer = tracers[0]
	default:
		pgxPoolConfig.ConnConfig.Tracer = &multiTracer{tracers: tracers}
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), pgxPoolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout)
	defer cancel()
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().
		Str("host", cfg.Database.Host).
		Str("database", cfg.Database.Name).
		Msg("connected to the database")

	return &Database{Pool: pool, log: logger}, nil
}

// applyPoolTuning copies the non-zero pool settings onto the pgxpool config.
func applyPoolTuning(poolConfig *pgxpool.Config, db config.DatabaseConfig) {
	if db.MaxOpenConns > 0 {
		poolConfig.MaxConns = int32(db.MaxOpenConns)
	}
	if db.MaxIdleConns > 0 {
		poolConfig.MinConns = int32(min(db.MaxIdleConns, int(poolConfig.MaxConns)))
	}
	if db.ConnMaxLifetime > 0 {
		poolConfig.MaxConnLifetime = time.Duration(db.ConnMaxLifetime) * time.Second
	}
	if db.ConnMaxIdleTime > 0 {
		poolConfig.MaxConnIdleTime = time.Duration(db.ConnMaxIdleTime) * time.Second
	}
}

// Close closes the connection pool.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")
	db.Pool.Close()
	return nil
}
