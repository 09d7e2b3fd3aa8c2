package domain

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderApproved  OrderStatus = "approved"
	OrderRejected  OrderStatus = "rejected"
	OrderCancelled OrderStatus = "cancelled"
)

// orderTransitions defines the allowed state machine transitions. Terminal
// states have no outgoing edges; a same-value update is always accepted as a
// no-op so repeated admin actions stay idempotent.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending: {OrderApproved, OrderRejected, OrderCancelled},
}

// IsValid reports whether s belongs to the closed order status vocabulary.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderApproved, OrderRejected, OrderCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from s to next is allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order is created from one checkout submission. Buyer identity, the initial
// pending status, and the creation timestamp are stamped server-side.
type Order struct {
	ID        string      `json:"id" bson:"_id,omitempty"`
	Username  string      `json:"userName" bson:"username"`
	Email     string      `json:"email" bson:"email"`
	PaymentID string      `json:"paymentId" bson:"payment_id"`
	Items     []string    `json:"items" bson:"items"`
	Total     float64     `json:"total" bson:"total"`
	Status    OrderStatus `json:"status" bson:"status"`
	CreatedAt time.Time   `json:"createdAt" bson:"created_at"`
}
