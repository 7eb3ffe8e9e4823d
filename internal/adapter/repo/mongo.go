package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect dials MongoDB and pings it before returning the database handle.
func Connect(ctx context.Context, uri, database string, timeout time.Duration) (*mongo.Database, func(), error) {
	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(dialCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	cleanup := func() {
		_ = client.Disconnect(context.Background())
	}
	return client.Database(database), cleanup, nil
}
