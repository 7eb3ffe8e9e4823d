package repo

import (
	"context"

	domain "github.com/tdngo/gomarket-api/internal/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoMessageRepo struct {
	col *mongo.Collection
}

func NewMongoMessageRepo(db *mongo.Database) *MongoMessageRepo {
	return &MongoMessageRepo{col: db.Collection("messages")}
}

func (r *MongoMessageRepo) Create(ctx context.Context, m *domain.Message) error {
	_, err := r.col.InsertOne(ctx, m)
	return err
}

func (r *MongoMessageRepo) ListByConversation(ctx context.Context, conversationID string) ([]domain.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{"conversation_id": conversationID}, opts)
	if err != nil {
		return nil, err
	}
	var out []domain.Message
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
