package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo bundles the client and the collections the application touches.
type Mongo struct {
	Client   *mongo.Client
	Users    *mongo.Collection
	Messages *mongo.Collection
}

// Connect dials MongoDB, verifies the connection with a ping and resolves the
// collection handles.
func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	return &Mongo{
		Client:   client,
		Users:    db.Collection("users"),
		Messages: db.Collection("messages"),
	}, nil
}

// EnsureIndexes creates the indexes the match and history queries lean on.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.Users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "age", Value: 1}, {Key: "gender", Value: 1}}},
		{Keys: bson.D{{Key: "religion", Value: 1}, {Key: "caste", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = m.Messages.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "senderId", Value: 1}, {Key: "receiverId", Value: 1}, {Key: "timestamp", Value: 1}}},
	})
	return err
}

func (m *Mongo) Disconnect(ctx context.Context) error {
	if m.Client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return m.Client.Disconnect(ctx)
}
