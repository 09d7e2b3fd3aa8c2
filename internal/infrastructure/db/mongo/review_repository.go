package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gymclub/booking-system/internal/core/domain"
)

const reviewsCollection = "reviews"

type ReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{coll: db.Collection(reviewsCollection)}
}

type mongoReview struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Name      string             `bson:"name"`
	Rating    int                `bson:"rating"`
	Text      string             `bson:"text"`
	Status    string             `bson:"status"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *ReviewRepository) Insert(ctx context.Context, review *domain.Review) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoReview{
		Username:  review.Username,
		Name:      review.Name,
		Rating:    review.Rating,
		Text:      review.Text,
		Status:    string(review.Status),
		CreatedAt: review.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid.Hex()
	}
	return nil
}

func (r *ReviewRepository) FindByStatus(ctx context.Context, status domain.ReviewStatus) ([]*domain.Review, error) {
	return r.find(ctx, bson.M{"status": string(status)})
}

func (r *ReviewRepository) FindAll(ctx context.Context) ([]*domain.Review, error) {
	return r.find(ctx, bson.M{})
}

func (r *ReviewRepository) find(ctx context.Context, filter bson.M) ([]*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []*domain.Review{}
	for cursor.Next(ctx) {
		var mr mongoReview
		if err := cursor.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode review: %w", err)
		}
		reviews = append(reviews, &domain.Review{
			ID:        mr.ID.Hex(),
			Username:  mr.Username,
			Name:      mr.Name,
			Rating:    mr.Rating,
			Text:      mr.Text,
			Status:    domain.ReviewStatus(mr.Status),
			CreatedAt: unixToTime(mr.CreatedAt),
		})
	}
	return reviews, cursor.Err()
}

func (r *ReviewRepository) UpdateStatus(ctx context.Context, id string, status domain.ReviewStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrReviewNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": string(status)}},
	)
	if err != nil {
		return fmt.Errorf("update review status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}
