package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gymclub/booking-system/internal/core/domain"
)

const cartsCollection = "carts"

type CartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{coll: db.Collection(cartsCollection)}
}

type mongoCartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	ServiceID string             `bson:"service_id"`
	AddedAt   int64              `bson:"added_at"`
}

func (r *CartRepository) Insert(ctx context.Context, item *domain.CartItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCartItem{
		Email:     item.Email,
		ServiceID: item.ServiceID,
		AddedAt:   item.AddedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert cart item: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid.Hex()
	}
	return nil
}

func (r *CartRepository) FindByEmail(ctx context.Context, email string) ([]*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("find cart items: %w", err)
	}
	defer cursor.Close(ctx)

	items := []*domain.CartItem{}
	for cursor.Next(ctx) {
		var mc mongoCartItem
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode cart item: %w", err)
		}
		items = append(items, &domain.CartItem{
			ID:        mc.ID.Hex(),
			Email:     mc.Email,
			ServiceID: mc.ServiceID,
			AddedAt:   unixToTime(mc.AddedAt),
		})
	}
	return items, cursor.Err()
}

func (r *CartRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"email": email})
	if err != nil {
		return 0, fmt.Errorf("clear cart: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the owner-lookup index on the carts collection.
func (r *CartRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	})
	return err
}
