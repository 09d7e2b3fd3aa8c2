package domain

import "time"

// AuditEvent records a single admin status change on an order or a review.
// Events are written asynchronously and never affect the admin request that
// produced them.
type AuditEvent struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Entity    string    `json:"entity" bson:"entity"`   // "order" | "review"
	SubjectID string    `json:"subjectId" bson:"subject_id"`
	Status    string    `json:"status" bson:"status"`
	Actor     string    `json:"actor" bson:"actor"` // admin username
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
