package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sevenam/diamondstore/internal/store"
)

const snapshotsCollection = "snapshots"

type snapshotDoc struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type MongoBackend struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewMongoBackend(ctx context.Context, mongoURL, database string) (*MongoBackend, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &MongoBackend{
		client: client,
		coll:   client.Database(database).Collection(snapshotsCollection),
	}, nil
}

func (mb *MongoBackend) Load(ctx context.Context, key string) ([]byte, error) {
	var doc snapshotDoc
	err := mb.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}
	return []byte(doc.Value), nil
}

func (mb *MongoBackend) Save(ctx context.Context, key string, blob []byte) error {
	opts := options.Update().SetUpsert(true)
	_, err := mb.coll.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": string(blob), "updated_at": time.Now().UTC()}},
		opts,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}
	return nil
}

func (mb *MongoBackend) Close(ctx context.Context) error {
	return mb.client.Disconnect(ctx)
}
