package repo

import (
	"context"
	"errors"

	domain "github.com/tdngo/gomarket-api/internal/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoCouponRepo struct {
	col *mongo.Collection
}

func NewMongoCouponRepo(db *mongo.Database) *MongoCouponRepo {
	return &MongoCouponRepo{col: db.Collection("coupons")}
}

// Create rejects a duplicate coupon name.
func (r *MongoCouponRepo) Create(ctx context.Context, c *domain.Coupon) error {
	err := r.col.FindOne(ctx, bson.M{"name": c.Name}).Err()
	if err == nil {
		return domain.ErrCouponTaken
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	_, err = r.col.InsertOne(ctx, c)
	return err
}

func (r *MongoCouponRepo) GetByName(ctx context.Context, name string) (*domain.Coupon, error) {
	var c domain.Coupon
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MongoCouponRepo) ListByShop(ctx context.Context, shopID string) ([]domain.Coupon, error) {
	cursor, err := r.col.Find(ctx, bson.M{"shop_id": shopID})
	if err != nil {
		return nil, err
	}
	var out []domain.Coupon
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoCouponRepo) Delete(ctx context.Context, id, shopID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "shop_id": shopID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
