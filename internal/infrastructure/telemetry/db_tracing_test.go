package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type tracedPizza struct {
	ID   int64
	Name string
}

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestRegisterDBTracing_Disabled(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, RegisterDBTracing(db, DBTracingConfig{Enabled: false}, zap.NewNop()))
	_, ok := db.Plugins["otelgorm"]
	assert.False(t, ok)
}

func TestRegisterDBTracing_RecordsQuerySpans(t *testing.T) {
	_, rec := newRecordingProvider(t)
	db := openSQLite(t)

	require.NoError(t, RegisterDBTracing(db, DBTracingConfig{Enabled: true, DBName: "sqlite"}, zap.NewNop()))
	require.NoError(t, db.AutoMigrate(&tracedPizza{}))

	ctx, span := StartServiceSpan(context.Background(), "pizza", "create")
	require.NoError(t, db.WithContext(ctx).Create(&tracedPizza{Name: "Margherita"}).Error)
	span.End()

	var children int
	for _, s := range rec.Ended() {
		if s.Parent().SpanID() == span.SpanContext().SpanID() {
			children++
		}
	}
	assert.GreaterOrEqual(t, children, 1, "insert span is a child of the service span")
}

func TestAnnotateSpan(t *testing.T) {
	_, rec := newRecordingProvider(t)
	db := openSQLite(t)

	ctx, span := StartServiceSpan(context.Background(), "pizza", "list")
	ctx = context.WithValue(ctx, queryStartKey{}, time.Now().Add(-time.Second))

	stmt := db.WithContext(ctx)
	stmt.Statement.Table = "pizzas"
	stmt.Statement.RowsAffected = 9

	annotateSpan(100 * time.Millisecond)(stmt)
	span.End()

	attrs := attrMap(rec.Ended()[0].Attributes())
	assert.Equal(t, "pizzas", attrs["db.sql.table"].AsString())
	assert.Equal(t, int64(9), attrs["db.rows_affected"].AsInt64())
	assert.True(t, attrs["db.slow_query"].AsBool())
	assert.GreaterOrEqual(t, attrs["db.query_duration_ms"].AsInt64(), int64(1000))
}
