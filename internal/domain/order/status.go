package order

import (
	"strings"

	"github.com/pizzeria/backend/internal/domain/shared"
)

// Status represents where an order is in its delivery lifecycle
type Status string

const (
	StatusPending        Status = "Pending"
	StatusPreparing      Status = "Preparing"
	StatusOutForDelivery Status = "Out for Delivery"
	StatusDelivered      Status = "Delivered"
	StatusCancelled      Status = "Cancelled"
)

// AllStatuses returns every status in lifecycle order
func AllStatuses() []Status {
	return []Status{StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered, StatusCancelled}
}

// IsValid checks if the status is a member of the fixed status set
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further lifecycle step follows this status
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks the lifecycle table. It is only consulted under StrictTransitions.
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return true
	}
	switch s {
	case StatusPending:
		return target == StatusPreparing || target == StatusCancelled
	case StatusPreparing:
		return target == StatusOutForDelivery || target == StatusCancelled
	case StatusOutForDelivery:
		return target == StatusDelivered || target == StatusCancelled
	case StatusDelivered, StatusCancelled:
		return false
	}
	return false
}

// ParseStatus validates raw input against the status set. Matching is exact
// apart from surrounding whitespace.
func ParseStatus(raw string) (Status, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", shared.NewValidationError("status is required")
	}
	s := Status(raw)
	if !s.IsValid() {
		return "", shared.NewValidationError("invalid status, must be one of: Pending, Preparing, Out for Delivery, Delivered, Cancelled")
	}
	return s, nil
}

// TransitionPolicy decides whether a status change is allowed
type TransitionPolicy interface {
	Allow(from, to Status) bool
}

// AnyTransition allows every change within the status set
type AnyTransition struct{}

// Allow implements TransitionPolicy
func (AnyTransition) Allow(_, _ Status) bool { return true }

// StrictTransitions only allows forward lifecycle steps and cancellation
type StrictTransitions struct{}

// Allow implements TransitionPolicy
func (StrictTransitions) Allow(from, to Status) bool { return from.CanTransitionTo(to) }
