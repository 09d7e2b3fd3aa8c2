package domain

import "time"

// CartItem links a user's email to a catalog service. The email is always the
// resolved token identity of the caller, never a client-supplied field.
type CartItem struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Email     string    `json:"email" bson:"email"`
	ServiceID string    `json:"serviceId" bson:"service_id"`
	AddedAt   time.Time `json:"addedAt" bson:"added_at"`
}
