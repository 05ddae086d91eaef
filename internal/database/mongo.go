package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoDB struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoDB 建立 MongoDB 連線並確認可連通，回傳 DB 介面實作
func NewMongoDB(ctx context.Context, url, name string) (DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &mongoDB{client: client, db: client.Database(name)}, nil
}

func (m *mongoDB) Collection(name string) Collection {
	return m.db.Collection(name)
}

func (m *mongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *mongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// EnsureIndexes 建立應用依賴的索引
// users.email 為大小寫不敏感唯一索引，補上 check-then-insert 在
// 併發註冊下無法保證的唯一性
func EnsureIndexes(ctx context.Context, db DB) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetCollation(&options.Collation{Locale: "en", Strength: 2}),
	})
	if err != nil {
		return err
	}
	_, err = db.Collection("countries").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
