// internal/repository/interfaces.go
package repository

import (
	"context"

	"marketing-asset-backend/internal/models"
)

// DefaultListLimit caps asset listings when the caller passes no limit.
const DefaultListLimit = 100

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// TryDebit subtracts amount only if the balance covers it, as one storage operation.
	// It reports false and leaves the record untouched otherwise. On success user is
	// refreshed with the stored balance.
	TryDebit(ctx context.Context, user *models.User, amount int) (bool, error)
	Credit(ctx context.Context, user *models.User, amount int) error
}

type AssetRepository interface {
	Create(ctx context.Context, asset *models.Asset) error
	GetByID(ctx context.Context, id string) (*models.Asset, error)
	// ListByUser returns the owner's assets newest first, at most limit of them.
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Asset, error)
	Delete(ctx context.Context, id string) (bool, error)
	CountByUserAndType(ctx context.Context, userID string, assetType models.AssetType) (int64, error)
}

type CreditUsageRepository interface {
	Create(ctx context.Context, usage *models.CreditUsage) error
	CountByUser(ctx context.Context, userID string) (int64, error)
	GetByAssetID(ctx context.Context, assetID string) (*models.CreditUsage, error)
}
