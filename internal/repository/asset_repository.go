// internal/repository/asset_repository.go
package repository

import (
	"context"
	"errors"

	"marketing-asset-backend/internal/models"
	apperrors "marketing-asset-backend/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type assetRepository struct {
	collection *mongo.Collection
}

func NewAssetRepository(collection *mongo.Collection) AssetRepository {
	return &assetRepository{
		collection: collection,
	}
}

func (r *assetRepository) Create(ctx context.Context, asset *models.Asset) error {
	_, err := r.collection.InsertOne(ctx, asset)
	return err
}

func (r *assetRepository) GetByID(ctx context.Context, id string) (*models.Asset, error) {
	var asset models.Asset
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&asset)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewAssetNotFoundError()
		}
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.Asset, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	assets := make([]models.Asset, 0)
	if err = cursor.All(ctx, &assets); err != nil {
		return nil, err
	}

	return assets, nil
}

func (r *assetRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (r *assetRepository) CountByUserAndType(ctx context.Context, userID string, assetType models.AssetType) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"user_id":    userID,
		"asset_type": assetType,
	})
}
