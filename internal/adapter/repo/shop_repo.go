package repo

import (
	"context"
	"errors"

	domain "github.com/tdngo/gomarket-api/internal/entity"
	"github.com/tdngo/gomarket-api/internal/usecase"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoShopRepo struct {
	col *mongo.Collection
}

func NewMongoShopRepo(db *mongo.Database) *MongoShopRepo {
	return &MongoShopRepo{col: db.Collection("shops")}
}

func (r *MongoShopRepo) Create(ctx context.Context, s *domain.Shop) error {
	_, err := r.col.InsertOne(ctx, s)
	return err
}

func (r *MongoShopRepo) GetByID(ctx context.Context, id string) (*domain.Shop, error) {
	var s domain.Shop
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrShopNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *MongoShopRepo) GetByEmail(ctx context.Context, email string) (*domain.Shop, error) {
	var s domain.Shop
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrShopNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *MongoShopRepo) SetAvailableBalance(ctx context.Context, shopID string, balance float64) error {
	return r.updateBalance(ctx, shopID, bson.M{"$set": bson.M{"available_balance": balance}})
}

func (r *MongoShopRepo) IncAvailableBalance(ctx context.Context, shopID string, delta float64) error {
	return r.updateBalance(ctx, shopID, bson.M{"$inc": bson.M{"available_balance": delta}})
}

func (r *MongoShopRepo) updateBalance(ctx context.Context, shopID string, update bson.M) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": shopID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrShopNotFound
	}
	return nil
}

func (r *MongoShopRepo) SetWithdrawMethod(ctx context.Context, shopID string, m *domain.WithdrawMethod) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": shopID},
		bson.M{"$set": bson.M{"withdraw_method": m}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrShopNotFound
	}
	return nil
}

var _ usecase.ShopRepo = (*MongoShopRepo)(nil)
