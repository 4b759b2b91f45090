package order

import (
	"errors"
	"testing"

	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("prices the order from the unit price", func(t *testing.T) {
		o, err := NewOrder(1, 2, 3, decimal.RequireFromString("12.99"))
		require.NoError(t, err)
		assert.Equal(t, "38.97", o.TotalPrice.StringFixed(2))
		assert.Equal(t, StatusPending, o.Status)
		assert.Equal(t, int64(1), o.CustomerID)
		assert.Equal(t, int64(2), o.PizzaID)
		assert.False(t, o.OrderDate.IsZero())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		for _, q := range []int{0, -1, -100} {
			_, err := NewOrder(1, 2, q, decimal.NewFromInt(10))
			require.Error(t, err)
			assert.True(t, errors.Is(err, shared.ErrValidation))
			assert.Equal(t, "quantity must be positive", err.Error())
		}
	})

	t.Run("rejects non-positive unit price", func(t *testing.T) {
		_, err := NewOrder(1, 2, 1, decimal.Zero)
		require.Error(t, err)
	})
}

func TestCalculateTotal(t *testing.T) {
	tests := []struct {
		price string
		qty   int
		want  string
	}{
		{"12.99", 3, "38.97"},
		{"0.10", 3, "0.30"},
		{"14.99", 1, "14.99"},
		{"9.99", 100, "999.00"},
		{"0.01", 7, "0.07"},
	}
	for _, tt := range tests {
		got := CalculateTotal(decimal.RequireFromString(tt.price), tt.qty)
		assert.Equal(t, tt.want, got.StringFixed(2), "%s x %d", tt.price, tt.qty)
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range AllStatuses() {
		got, err := ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	for _, raw := range []string{"", "pending", "Shipped", "Out For Delivery", "DELIVERED"} {
		_, err := ParseStatus(raw)
		require.Error(t, err, raw)
		assert.Equal(t, shared.CodeValidation, shared.CodeOf(err))
	}
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("any transition within the set is allowed by default", func(t *testing.T) {
		o := &Order{Status: StatusPending}
		require.NoError(t, o.ChangeStatus(StatusDelivered, nil))
		assert.Equal(t, StatusDelivered, o.Status)

		require.NoError(t, o.ChangeStatus(StatusPending, AnyTransition{}))
		assert.Equal(t, StatusPending, o.Status)
	})

	t.Run("rejects status outside the set", func(t *testing.T) {
		o := &Order{Status: StatusPending}
		err := o.ChangeStatus(Status("Lost"), nil)
		require.Error(t, err)
		assert.Equal(t, StatusPending, o.Status)
	})

	t.Run("strict policy follows the lifecycle table", func(t *testing.T) {
		policy := StrictTransitions{}
		o := &Order{Status: StatusPending}

		err := o.ChangeStatus(StatusDelivered, policy)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid status transition")

		require.NoError(t, o.ChangeStatus(StatusPreparing, policy))
		require.NoError(t, o.ChangeStatus(StatusOutForDelivery, policy))
		require.NoError(t, o.ChangeStatus(StatusDelivered, policy))
		assert.Error(t, o.ChangeStatus(StatusCancelled, policy))
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusPreparing, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusOutForDelivery, false},
		{StatusPreparing, StatusOutForDelivery, true},
		{StatusOutForDelivery, StatusDelivered, true},
		{StatusOutForDelivery, StatusPending, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusCancelled, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
	assert.True(t, StatusDelivered.IsTerminal())
	assert.False(t, StatusPreparing.IsTerminal())
}

func TestEvents(t *testing.T) {
	o := &Order{ID: 42, CustomerID: 1, PizzaID: 2, Quantity: 3, TotalPrice: decimal.RequireFromString("38.97")}

	created := NewCreatedEvent(o)
	assert.Equal(t, EventTypeOrderCreated, created.EventType())
	assert.Equal(t, int64(42), created.AggregateID())
	assert.Equal(t, AggregateTypeOrder, created.AggregateType())

	changed := NewStatusChangedEvent(42, StatusPending, StatusDelivered)
	assert.Equal(t, EventTypeOrderStatusChanged, changed.EventType())
	assert.NotEqual(t, created.EventID(), changed.EventID())

	deleted := NewDeletedEvent(42)
	assert.Equal(t, EventTypeOrderDeleted, deleted.EventType())
}
