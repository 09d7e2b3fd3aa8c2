package domain

import "time"

// Message is a contact-form submission. No authentication required to send
// one; only admins can read them.
type Message struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Subject   string    `json:"subject" bson:"subject"`
	Body      string    `json:"message" bson:"body"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}
