package domain

import "time"

// ReviewStatus represents the moderation state of a review. Only approved
// reviews are publicly visible.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// IsValid reports whether s belongs to the closed review status vocabulary.
func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewPending, ReviewApproved, ReviewRejected:
		return true
	}
	return false
}

// Review is buyer-authored text tied to the author's token identity. Admins
// may move a review between approved and rejected repeatedly.
type Review struct {
	ID        string       `json:"_id" bson:"_id,omitempty"`
	Username  string       `json:"userName" bson:"username"`
	Name      string       `json:"name" bson:"name"`
	Rating    int          `json:"rating" bson:"rating"`
	Text      string       `json:"text" bson:"text"`
	Status    ReviewStatus `json:"status" bson:"status"`
	CreatedAt time.Time    `json:"createdAt" bson:"created_at"`
}
