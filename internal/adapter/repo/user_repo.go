package repo

import (
	"context"
	"errors"

	domain "github.com/tdngo/gomarket-api/internal/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUserRepo struct {
	col *mongo.Collection
}

func NewMongoUserRepo(db *mongo.Database) *MongoUserRepo {
	return &MongoUserRepo{col: db.Collection("users")}
}

func (r *MongoUserRepo) Create(ctx context.Context, u *domain.User) error {
	_, err := r.col.InsertOne(ctx, u)
	return err
}

func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpsertAddress replaces an address with the same type, or appends.
func (r *MongoUserRepo) UpsertAddress(ctx context.Context, userID string, addr domain.Address) (*domain.User, error) {
	u, err := r.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	replaced := false
	for i := range u.Addresses {
		if u.Addresses[i].AddressType == addr.AddressType {
			u.Addresses[i] = addr
			replaced = true
			break
		}
	}
	if !replaced {
		u.Addresses = append(u.Addresses, addr)
	}
	if err := r.setAddresses(ctx, userID, u.Addresses); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *MongoUserRepo) DeleteAddress(ctx context.Context, userID, addressID string) (*domain.User, error) {
	u, err := r.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	kept := u.Addresses[:0]
	for _, a := range u.Addresses {
		if a.ID != addressID {
			kept = append(kept, a)
		}
	}
	u.Addresses = kept
	if err := r.setAddresses(ctx, userID, u.Addresses); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *MongoUserRepo) setAddresses(ctx context.Context, userID string, addrs []domain.Address) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"addresses": addrs}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
