package repo

import (
	"context"
	"errors"

	domain "github.com/tdngo/gomarket-api/internal/entity"
	"github.com/tdngo/gomarket-api/internal/usecase"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoOrderRepo struct {
	col *mongo.Collection
}

func NewMongoOrderRepo(db *mongo.Database) *MongoOrderRepo {
	return &MongoOrderRepo{col: db.Collection("orders")}
}

func (r *MongoOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	_, err := r.col.InsertOne(ctx, o)
	return err
}

func (r *MongoOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *MongoOrderRepo) Update(ctx context.Context, o *domain.Order) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": o.ID}, o)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *MongoOrderRepo) UpdatePaymentStatus(ctx context.Context, orderID, paymentID, status string) error {
	update := bson.M{"$set": bson.M{
		"payment_info.status": status,
	}}
	if paymentID != "" {
		update["$set"].(bson.M)["payment_info.id"] = paymentID
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": orderID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *MongoOrderRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *MongoOrderRepo) ListByShop(ctx context.Context, shopID string) ([]domain.Order, error) {
	return r.list(ctx, bson.M{"shop_id": shopID})
}

func (r *MongoOrderRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoOrderRepo) list(ctx context.Context, filter bson.M) ([]domain.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var out []domain.Order
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var _ usecase.OrderRepo = (*MongoOrderRepo)(nil)
