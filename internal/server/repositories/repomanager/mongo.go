package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/secondchance/internal/server/repositories/items"
	"github.com/dmitrijs2005/secondchance/internal/server/repositories/users"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// MongoRepositoryManager vends repositories over one Mongo client.
type MongoRepositoryManager struct {
	client *mongo.Client
	users  *users.MongoRepository
	items  *items.MongoRepository
}

// NewMongoRepositoryManager connects, pings the primary and creates the
// unique indexes the repositories rely on.
func NewMongoRepositoryManager(ctx context.Context, uri, database, itemsCollection string) (*MongoRepositoryManager, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect error: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping error: %w", err)
	}

	db := client.Database(database)
	m := &MongoRepositoryManager{
		client: client,
		users:  users.NewMongoRepository(db),
		items:  items.NewMongoRepository(db, itemsCollection),
	}

	if err := m.users.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("users index error: %w", err)
	}
	if err := m.items.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("items index error: %w", err)
	}

	return m, nil
}

func (m *MongoRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MongoRepositoryManager) Items() items.Repository {
	return m.items
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
