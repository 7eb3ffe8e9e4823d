package repo

import (
	"context"
	"errors"

	domain "github.com/tdngo/gomarket-api/internal/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoEventRepo struct {
	col *mongo.Collection
}

func NewMongoEventRepo(db *mongo.Database) *MongoEventRepo {
	return &MongoEventRepo{col: db.Collection("events")}
}

func (r *MongoEventRepo) Create(ctx context.Context, e *domain.Event) error {
	_, err := r.col.InsertOne(ctx, e)
	return err
}

func (r *MongoEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	var e domain.Event
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *MongoEventRepo) Delete(ctx context.Context, id, shopID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "shop_id": shopID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MongoEventRepo) ListByShop(ctx context.Context, shopID string) ([]domain.Event, error) {
	return r.list(ctx, bson.M{"shop_id": shopID})
}

func (r *MongoEventRepo) ListAll(ctx context.Context) ([]domain.Event, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoEventRepo) list(ctx context.Context, filter bson.M) ([]domain.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var out []domain.Event
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
