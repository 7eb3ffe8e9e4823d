package repo

import (
	"context"
	"errors"
	"time"

	domain "github.com/tdngo/gomarket-api/internal/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoConversationRepo struct {
	col *mongo.Collection
}

func NewMongoConversationRepo(db *mongo.Database) *MongoConversationRepo {
	return &MongoConversationRepo{col: db.Collection("conversations")}
}

// GetByGroupTitle supports idempotent conversation creation.
func (r *MongoConversationRepo) GetByGroupTitle(ctx context.Context, groupTitle string) (*domain.Conversation, error) {
	var c domain.Conversation
	err := r.col.FindOne(ctx, bson.M{"group_title": groupTitle}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MongoConversationRepo) Create(ctx context.Context, c *domain.Conversation) error {
	_, err := r.col.InsertOne(ctx, c)
	return err
}

// ListByMember returns conversations containing the member, most recent first.
func (r *MongoConversationRepo) ListByMember(ctx context.Context, memberID string) ([]domain.Conversation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"members": memberID}, opts)
	if err != nil {
		return nil, err
	}
	var out []domain.Conversation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoConversationRepo) UpdateLastMessage(ctx context.Context, id, lastMessage, lastMessageID string, now time.Time) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"last_message":    lastMessage,
			"last_message_id": lastMessageID,
			"updated_at":      now,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
