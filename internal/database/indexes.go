// internal/database/indexes.go
package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Indexes lists the indexes each collection needs.
var Indexes = map[string][]mongo.IndexModel{
	UsersCollection: {
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	},
	AssetsCollection: {
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "asset_type", Value: 1}},
		},
	},
	CreditUsageCollection: {
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "asset_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	},
}

func (m *MongoDB) CreateIndexes(ctx context.Context) error {
	zap.L().Debug("Creating database indexes")

	for name, models := range Indexes {
		if _, err := m.GetCollection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("collection %s: %w", name, err)
		}
		zap.L().Debug("Collection indexes created", zap.String("collection", name), zap.Int("count", len(models)))
	}

	zap.L().Info("Database indexes created successfully")
	return nil
}
