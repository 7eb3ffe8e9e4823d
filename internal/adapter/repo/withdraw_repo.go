package repo

import (
	"context"
	"errors"
	"time"

	domain "github.com/tdngo/gomarket-api/internal/entity"
	"github.com/tdngo/gomarket-api/internal/usecase"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoWithdrawRepo struct {
	col *mongo.Collection
}

func NewMongoWithdrawRepo(db *mongo.Database) *MongoWithdrawRepo {
	return &MongoWithdrawRepo{col: db.Collection("withdrawals")}
}

func (r *MongoWithdrawRepo) Create(ctx context.Context, w *domain.Withdraw) error {
	_, err := r.col.InsertOne(ctx, w)
	return err
}

func (r *MongoWithdrawRepo) UpdateStatus(ctx context.Context, id string, status domain.WithdrawStatus) (*domain.Withdraw, error) {
	var w domain.Withdraw
	after := options.After
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&w)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrWithdrawNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *MongoWithdrawRepo) ListAll(ctx context.Context) ([]domain.Withdraw, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var out []domain.Withdraw
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var _ usecase.WithdrawRepo = (*MongoWithdrawRepo)(nil)
