package telemetry

import (
	"context"

	"github.com/pizzeria/backend/internal/domain/order"
	"github.com/pizzeria/backend/internal/domain/shared"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// OrderMetrics records business metrics from order events published on the
// event bus.
type OrderMetrics struct {
	logger *zap.Logger

	ordersCreated *Counter
	pizzasOrdered *Counter
	revenueCents  *Counter
	statusChanges *Counter
	ordersDeleted *Counter
	orderQuantity *Histogram
}

// NewOrderMetrics creates the order instruments on meter
func NewOrderMetrics(meter metric.Meter, logger *zap.Logger) (*OrderMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &OrderMetrics{logger: logger}
	var err error

	if m.ordersCreated, err = NewCounter(meter, "pizza_orders_created_total", "Total number of orders placed", "{orders}"); err != nil {
		return nil, err
	}
	if m.pizzasOrdered, err = NewCounter(meter, "pizza_pizzas_ordered_total", "Total number of pizzas across placed orders", "{pizzas}"); err != nil {
		return nil, err
	}
	if m.revenueCents, err = NewCounter(meter, "pizza_order_revenue_cents_total", "Total value of placed orders in cents", "{cents}"); err != nil {
		return nil, err
	}
	if m.statusChanges, err = NewCounter(meter, "pizza_order_status_changes_total", "Total number of order status updates", "{changes}"); err != nil {
		return nil, err
	}
	if m.ordersDeleted, err = NewCounter(meter, "pizza_orders_deleted_total", "Total number of deleted orders", "{orders}"); err != nil {
		return nil, err
	}
	if m.orderQuantity, err = NewHistogram(meter, HistogramOpts{
		Name:        "pizza_order_quantity",
		Description: "Pizzas per order",
		Unit:        "{pizzas}",
		Boundaries:  []float64{1, 2, 3, 5, 10, 20, 50},
	}); err != nil {
		return nil, err
	}

	return m, nil
}

// EventTypes implements shared.EventHandler
func (m *OrderMetrics) EventTypes() []string {
	return []string{
		order.EventTypeOrderCreated,
		order.EventTypeOrderStatusChanged,
		order.EventTypeOrderDeleted,
	}
}

// Handle implements shared.EventHandler
func (m *OrderMetrics) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *order.CreatedEvent:
		m.ordersCreated.Inc(ctx)
		m.pizzasOrdered.Add(ctx, int64(e.Quantity))
		m.revenueCents.Add(ctx, e.TotalPrice.Shift(2).Round(0).IntPart())
		m.orderQuantity.Record(ctx, float64(e.Quantity))
	case *order.StatusChangedEvent:
		m.statusChanges.Inc(ctx,
			AttrOrderPrevStatus.String(e.OldStatus.String()),
			AttrOrderStatus.String(e.NewStatus.String()),
		)
	case *order.DeletedEvent:
		m.ordersDeleted.Inc(ctx)
	default:
		m.logger.Debug("Ignoring event without order metrics", zap.String("event_type", event.EventType()))
	}
	return nil
}
