package models

// OrderStatus values match the lifecycle the shop staff work through.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// statusTransitions is the single source of truth for the lifecycle.
// Forward moves may skip steps (a shop can complete straight from pending),
// cancellation is only reachable before preparation finishes, and the two
// terminal states allow nothing.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusPreparing, OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusCompleted},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// Terminal reports whether no transition leaves s.
func (s OrderStatus) Terminal() bool {
	next, ok := statusTransitions[s]
	return ok && len(next) == 0
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CanCustomerCancel gates the customer-initiated cancellation path.
func (s OrderStatus) CanCustomerCancel() bool {
	return s == OrderStatusPending || s == OrderStatusPreparing
}
