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

type MongoProductRepo struct {
	col *mongo.Collection
}

func NewMongoProductRepo(db *mongo.Database) *MongoProductRepo {
	return &MongoProductRepo{col: db.Collection("products")}
}

func (r *MongoProductRepo) Create(ctx context.Context, p *domain.Product) error {
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *MongoProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// AdjustCounters applies one atomic $inc to stock and sold_out.
func (r *MongoProductRepo) AdjustCounters(ctx context.Context, productID string, stockDelta, soldDelta int) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": productID},
		bson.M{"$inc": bson.M{"stock": stockDelta, "sold_out": soldDelta}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *MongoProductRepo) Delete(ctx context.Context, id, shopID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "shop_id": shopID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *MongoProductRepo) ListByShop(ctx context.Context, shopID string) ([]domain.Product, error) {
	return r.list(ctx, bson.M{"shop_id": shopID})
}

func (r *MongoProductRepo) ListAll(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoProductRepo) list(ctx context.Context, filter bson.M) ([]domain.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var out []domain.Product
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var _ usecase.ProductInventory = (*MongoProductRepo)(nil)
