package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DefaultCollectionName is used when Settings.CollectionName is empty.
const DefaultCollectionName = "Pokemon"

// Settings identifies the document collection. It is passed by value so the
// store never reads process-wide configuration.
type Settings struct {
	ConnectionString string
	DatabaseName     string
	CollectionName   string
	ConnectTimeout   time.Duration
}

// Client owns the driver connection and the Repository built on it.
type Client struct {
	*Repository

	client *mongo.Client
}

// Connect opens a client, verifies it with a ping and returns a Client whose
// embedded Repository targets the configured collection.
func Connect(ctx context.Context, settings Settings) (*Client, error) {
	if settings.ConnectionString == "" {
		return nil, fmt.Errorf("mongodb connection string is not set")
	}
	if settings.DatabaseName == "" {
		return nil, fmt.Errorf("mongodb database name is not set")
	}
	collection := settings.CollectionName
	if collection == "" {
		collection = DefaultCollectionName
	}
	timeout := settings.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	opts := options.Client().
		ApplyURI(settings.ConnectionString).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	c := &Client{
		Repository: NewRepository(client.Database(settings.DatabaseName).Collection(collection)),
		client:     client,
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := c.Ping(pingCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return c, nil
}

// Ping checks that the primary is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return nil
}

func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
