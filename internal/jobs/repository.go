package jobs

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusbridge/campusbridge/internal/guard"
)

// Repository defines persistence operations for job postings.
type Repository interface {
	Create(ctx context.Context, j *Job) (string, error)
	Get(ctx context.Context, id string) (*Job, error)
	ListByCollege(ctx context.Context, collegeID string) ([]Job, error)
	SetLogoKey(ctx context.Context, id, key string) error
	IncrementApplications(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// MongoRepository implements Repository using a Mongo collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	// listing is always per college, newest first
	idx := mongo.IndexModel{Keys: bson.D{{Key: "collegeId", Value: 1}, {Key: "createdAt", Value: -1}}}
	col.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, j *Job) (string, error) {
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	if _, err := r.col.InsertOne(ctx, j); err != nil {
		return "", err
	}
	return j.ID, nil
}

func (r *MongoRepository) Get(ctx context.Context, id string) (*Job, error) {
	var j Job
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&j); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, guard.ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

func (r *MongoRepository) ListByCollege(ctx context.Context, collegeID string) ([]Job, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"collegeId": collegeID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []Job{}
	for cur.Next(ctx) {
		var j Job
		if err := cur.Decode(&j); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, cur.Err()
}

func (r *MongoRepository) SetLogoKey(ctx context.Context, id, key string) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"logoKey": key, "updatedAt": time.Now().UTC()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return guard.ErrNotFound
	}
	return nil
}

func (r *MongoRepository) IncrementApplications(ctx context.Context, id string) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"totalApplications": 1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return guard.ErrNotFound
	}
	return nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return guard.ErrNotFound
	}
	return nil
}
