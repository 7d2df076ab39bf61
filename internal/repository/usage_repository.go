// internal/repository/usage_repository.go
package repository

import (
	"context"
	"errors"

	"marketing-asset-backend/internal/models"
	apperrors "marketing-asset-backend/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// usageRepository only ever inserts; usage records are an audit trail.
type usageRepository struct {
	collection *mongo.Collection
}

func NewCreditUsageRepository(collection *mongo.Collection) CreditUsageRepository {
	return &usageRepository{
		collection: collection,
	}
}

func (r *usageRepository) Create(ctx context.Context, usage *models.CreditUsage) error {
	_, err := r.collection.InsertOne(ctx, usage)
	return err
}

func (r *usageRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"user_id": userID})
}

func (r *usageRepository) GetByAssetID(ctx context.Context, assetID string) (*models.CreditUsage, error) {
	var usage models.CreditUsage
	err := r.collection.FindOne(ctx, bson.M{"asset_id": assetID}).Decode(&usage)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewAppError(apperrors.ErrNotFound, 404, "Credit usage record not found")
		}
		return nil, err
	}
	return &usage, nil
}
