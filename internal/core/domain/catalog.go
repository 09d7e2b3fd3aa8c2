package domain

import "time"

// Image is the binary attachment stored alongside a catalog service. The
// bytes live inside the service document, so deleting the service also
// removes its image.
type Image struct {
	Name        string `json:"name" bson:"name"`
	ContentType string `json:"contentType" bson:"content_type"`
	Size        int64  `json:"size" bson:"size"`
	Data        []byte `json:"-" bson:"data"`
}

// Service is a bookable catalog item. Mutated only by admins.
type Service struct {
	ID          string    `json:"_id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Price       string    `json:"price" bson:"price"`
	Image       Image     `json:"image" bson:"image"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
}
