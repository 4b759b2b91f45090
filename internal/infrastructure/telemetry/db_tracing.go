package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig controls the otelgorm plugin
type DBTracingConfig struct {
	Enabled         bool
	LogFullSQL      bool // keep bound variables in db.statement
	SlowQueryThresh time.Duration
	DBName          string
}

type queryStartKey struct{}

// RegisterDBTracing installs otelgorm on db together with callbacks that
// annotate each span with the table, row count and a slow query marker
func RegisterDBTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		return nil
	}
	if cfg.SlowQueryThresh <= 0 {
		cfg.SlowQueryThresh = 200 * time.Millisecond
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(cfg.DBName)}
	if !cfg.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	annotate := annotateSpan(cfg.SlowQueryThresh)
	cb := db.Callback()
	// The annotation must run before otelgorm ends the span.
	err := errors.Join(
		cb.Create().Before("gorm:create").Register("pizza:query_start_create", markQueryStart),
		cb.Create().After("gorm:create").Before("otel:after:create").Register("pizza:annotate_create", annotate),
		cb.Query().Before("gorm:query").Register("pizza:query_start_query", markQueryStart),
		cb.Query().After("gorm:query").Before("otel:after:select").Register("pizza:annotate_query", annotate),
		cb.Update().Before("gorm:update").Register("pizza:query_start_update", markQueryStart),
		cb.Update().After("gorm:update").Before("otel:after:update").Register("pizza:annotate_update", annotate),
		cb.Delete().Before("gorm:delete").Register("pizza:query_start_delete", markQueryStart),
		cb.Delete().After("gorm:delete").Before("otel:after:delete").Register("pizza:annotate_delete", annotate),
		cb.Row().Before("gorm:row").Register("pizza:query_start_row", markQueryStart),
		cb.Row().After("gorm:row").Before("otel:after:row").Register("pizza:annotate_row", annotate),
		cb.Raw().Before("gorm:raw").Register("pizza:query_start_raw", markQueryStart),
		cb.Raw().After("gorm:raw").Before("otel:after:raw").Register("pizza:annotate_raw", annotate),
	)
	if err != nil {
		return err
	}

	logger.Info("Database tracing enabled",
		zap.String("db_name", cfg.DBName),
		zap.Bool("log_full_sql", cfg.LogFullSQL),
		zap.Duration("slow_query_threshold", cfg.SlowQueryThresh),
	)
	return nil
}

func markQueryStart(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = context.WithValue(db.Statement.Context, queryStartKey{}, time.Now())
	}
}

func annotateSpan(slow time.Duration) func(*gorm.DB) {
	return func(db *gorm.DB) {
		ctx := db.Statement.Context
		if ctx == nil {
			return
		}
		span := trace.SpanFromContext(ctx)
		if !span.IsRecording() {
			return
		}

		span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
		if db.Statement.Table != "" {
			span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
		}
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			span.SetStatus(codes.Error, db.Error.Error())
		}

		start, ok := ctx.Value(queryStartKey{}).(time.Time)
		if !ok {
			return
		}
		if elapsed := time.Since(start); elapsed > slow {
			span.SetAttributes(
				attribute.Bool("db.slow_query", true),
				attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
			)
		}
	}
}
