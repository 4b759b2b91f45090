package event

import (
	"context"

	"github.com/pizzeria/backend/internal/domain/order"
	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/pizzeria/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// OrderAuditHandler writes one structured log line per order event
type OrderAuditHandler struct {
	logger *zap.Logger
}

// NewOrderAuditHandler creates an OrderAuditHandler
func NewOrderAuditHandler(l *zap.Logger) *OrderAuditHandler {
	if l == nil {
		l = zap.NewNop()
	}
	return &OrderAuditHandler{logger: l.Named("audit")}
}

// EventTypes returns the order event types
func (h *OrderAuditHandler) EventTypes() []string {
	return []string{
		order.EventTypeOrderCreated,
		order.EventTypeOrderStatusChanged,
		order.EventTypeOrderDeleted,
	}
}

// Handle logs the event and its payload fields
func (h *OrderAuditHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	fields := []zap.Field{
		zap.String("event_id", event.EventID().String()),
		zap.String("event_type", event.EventType()),
		zap.Int64("order_id", event.AggregateID()),
		zap.Time("occurred_at", event.OccurredAt()),
	}
	if id := logger.GetRequestID(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}

	switch e := event.(type) {
	case *order.CreatedEvent:
		fields = append(fields,
			zap.Int64("customer_id", e.CustomerID),
			zap.Int64("pizza_id", e.PizzaID),
			zap.Int("quantity", e.Quantity),
			zap.String("total_price", e.TotalPrice.StringFixed(2)),
		)
	case *order.StatusChangedEvent:
		fields = append(fields,
			zap.String("old_status", e.OldStatus.String()),
			zap.String("new_status", e.NewStatus.String()),
		)
	}

	logger.WithTraceContext(ctx, h.logger).Info("Order event", fields...)
	return nil
}

var _ shared.EventHandler = (*OrderAuditHandler)(nil)
