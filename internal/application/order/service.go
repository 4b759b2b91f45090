package order

import (
	"context"

	"github.com/pizzeria/backend/internal/domain/customer"
	"github.com/pizzeria/backend/internal/domain/order"
	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/pizzeria/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// Service orchestrates order creation, status changes, queries and deletion.
// It owns the cross-entity checks; repositories only persist.
type Service struct {
	orders         order.Repository
	customers      customer.Repository
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
	policy         order.TransitionPolicy
	logger         *zap.Logger
}

// NewService creates a new order Service. Any status change within the status
// set is allowed until SetTransitionPolicy says otherwise.
func NewService(orders order.Repository, customers customer.Repository, txScope TransactionScope, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		orders:    orders,
		customers: customers,
		txScope:   txScope,
		policy:    order.AnyTransition{},
		logger:    logger,
	}
}

// SetEventPublisher sets the publisher that receives order events after commit
func (s *Service) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetTransitionPolicy replaces the status transition policy
func (s *Service) SetTransitionPolicy(policy order.TransitionPolicy) {
	if policy == nil {
		policy = order.AnyTransition{}
	}
	s.policy = policy
}

// CreateOrder validates the request, prices the order from the pizza's current
// price and persists it as Pending. The checks run in a fixed order: missing
// fields, quantity, pizza existence, customer existence.
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "order", "create")
	defer span.End()

	if req.CustomerID == nil || req.PizzaID == nil || req.Quantity == nil {
		return nil, shared.NewValidationError("missing required fields: customer_id, pizza_id, quantity")
	}
	if *req.Quantity <= 0 {
		return nil, shared.NewValidationError("quantity must be positive")
	}

	var created *order.Detail
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		pizza, err := repos.Pizzas().FindByID(ctx, *req.PizzaID)
		if err != nil {
			return err
		}

		exists, err := repos.Customers().Exists(ctx, *req.CustomerID)
		if err != nil {
			return err
		}
		if !exists {
			return shared.NewNotFoundError("customer")
		}

		o, err := order.NewOrder(*req.CustomerID, pizza.ID, *req.Quantity, pizza.Price)
		if err != nil {
			return err
		}
		if err := repos.Orders().Create(ctx, o); err != nil {
			return err
		}

		created, err = repos.Orders().FindDetailByID(ctx, o.ID)
		return err
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttributes(span,
		telemetry.SpanAttrOrderID, created.ID,
		telemetry.SpanAttrCustomerID, created.CustomerID,
		telemetry.SpanAttrPizzaID, created.PizzaID,
		telemetry.SpanAttrQuantity, created.Quantity,
		telemetry.SpanAttrTotalPrice, created.TotalPrice.StringFixed(2),
	)

	s.logger.Info("Order created",
		zap.Int64("order_id", created.ID),
		zap.Int64("customer_id", created.CustomerID),
		zap.Int64("pizza_id", created.PizzaID),
		zap.String("total_price", created.TotalPrice.StringFixed(2)))

	s.publish(ctx, order.NewCreatedEvent(&created.Order))

	response := ToOrderResponse(created)
	return &response, nil
}

// UpdateStatus sets a new status on an existing order. The status is validated
// before the order is looked up.
func (s *Service) UpdateStatus(ctx context.Context, orderID int64, req UpdateStatusRequest) (*OrderResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "order", "update_status")
	defer span.End()
	telemetry.SetAttributes(span,
		telemetry.SpanAttrOrderID, orderID,
		telemetry.SpanAttrOrderStatus, req.Status,
	)

	target, err := order.ParseStatus(req.Status)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	var (
		updated  *order.Detail
		previous order.Status
	)
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		o, err := repos.Orders().FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		previous = o.Status
		if err := o.ChangeStatus(target, s.policy); err != nil {
			return err
		}
		if err := repos.Orders().UpdateStatus(ctx, orderID, o.Status); err != nil {
			return err
		}

		updated, err = repos.Orders().FindDetailByID(ctx, orderID)
		return err
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.logger.Info("Order status updated",
		zap.Int64("order_id", orderID),
		zap.String("from", previous.String()),
		zap.String("to", target.String()))

	s.publish(ctx, order.NewStatusChangedEvent(orderID, previous, target))

	response := ToOrderResponse(updated)
	return &response, nil
}

// List returns every order, most recent order_date first
func (s *Service) List(ctx context.Context) (*OrderListResponse, error) {
	details, err := s.orders.FindAllDetails(ctx)
	if err != nil {
		return nil, err
	}
	orders := ToOrderResponses(details)
	return &OrderListResponse{
		Count:  len(orders),
		Orders: orders,
	}, nil
}

// GetByID returns one order with its customer and pizza display fields
func (s *Service) GetByID(ctx context.Context, orderID int64) (*OrderResponse, error) {
	detail, err := s.orders.FindDetailByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(detail)
	return &response, nil
}

// ListByCustomer returns a customer's orders after checking the customer exists
func (s *Service) ListByCustomer(ctx context.Context, customerID int64) (*CustomerOrdersResponse, error) {
	exists, err := s.customers.Exists(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewNotFoundError("customer")
	}

	details, err := s.orders.FindDetailsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	orders := ToOrderResponses(details)
	return &CustomerOrdersResponse{
		CustomerID: customerID,
		Count:      len(orders),
		Orders:     orders,
	}, nil
}

// Delete removes an order. Deleting an unknown order is a not-found error.
func (s *Service) Delete(ctx context.Context, orderID int64) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "order", "delete")
	defer span.End()
	telemetry.SetAttributes(span, telemetry.SpanAttrOrderID, orderID)

	if err := s.orders.Delete(ctx, orderID); err != nil {
		telemetry.RecordError(span, err)
		return err
	}

	s.logger.Info("Order deleted", zap.Int64("order_id", orderID))
	s.publish(ctx, order.NewDeletedEvent(orderID))
	return nil
}

// publish hands events to the publisher. The write has already committed, so a
// publish failure is logged and not returned.
func (s *Service) publish(ctx context.Context, events ...shared.DomainEvent) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish order events", zap.Error(err))
	}
}
