package colleges

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campusbridge/campusbridge/internal/guard"
	"github.com/campusbridge/campusbridge/internal/models"
)

// Repository defines persistence operations for colleges. Subscription terms
// are written by the global admin; the placement core only reads them.
type Repository interface {
	Get(ctx context.Context, id string) (*models.College, error)
	Create(ctx context.Context, c *models.College) (*models.College, error)
	SetSubscription(ctx context.Context, id string, sub models.Subscription) error
}

// MongoRepository implements Repository using a Mongo collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Get(ctx context.Context, id string) (*models.College, error) {
	var c models.College
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, guard.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *MongoRepository) Create(ctx context.Context, c *models.College) (*models.College, error) {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *MongoRepository) SetSubscription(ctx context.Context, id string, sub models.Subscription) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"subscription": sub, "updatedAt": time.Now().UTC()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return guard.ErrNotFound
	}
	return nil
}
