package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gymclub/booking-system/internal/core/domain"
)

const servicesCollection = "services"

type ServiceRepository struct {
	coll *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{coll: db.Collection(servicesCollection)}
}

type mongoService struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Price       string             `bson:"price"`
	Image       domain.Image       `bson:"image"`
	CreatedAt   int64              `bson:"created_at"`
}

func (r *ServiceRepository) Insert(ctx context.Context, svc *domain.Service) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoService{
		Title:       svc.Title,
		Description: svc.Description,
		Price:       svc.Price,
		Image:       svc.Image,
		CreatedAt:   svc.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		svc.ID = oid.Hex()
	}
	return nil
}

func (r *ServiceRepository) FindAll(ctx context.Context) ([]*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeServices(ctx, cursor)
}

// FindByIDs resolves cart references against the catalog. Ids that do not
// parse as object ids or have no matching document are skipped, not errors.
func (r *ServiceRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return []*domain.Service{}, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find services by ids: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeServices(ctx, cursor)
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrServiceNotFound
	}

	res := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid})
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrServiceNotFound
		}
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

func decodeServices(ctx context.Context, cursor *mongo.Cursor) ([]*domain.Service, error) {
	services := []*domain.Service{}
	for cursor.Next(ctx) {
		var ms mongoService
		if err := cursor.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode service: %w", err)
		}
		services = append(services, &domain.Service{
			ID:          ms.ID.Hex(),
			Title:       ms.Title,
			Description: ms.Description,
			Price:       ms.Price,
			Image:       ms.Image,
			CreatedAt:   unixToTime(ms.CreatedAt),
		})
	}
	return services, cursor.Err()
}
