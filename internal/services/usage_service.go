// internal/services/usage_service.go
package services

import (
	"context"

	"marketing-asset-backend/internal/models"
	"marketing-asset-backend/internal/repository"
)

// UsageService reports dashboard statistics. Counts are read straight from
// storage on every call.
type UsageService interface {
	GetDashboardStats(ctx context.Context, identity models.Identity) (*models.DashboardStatsResponse, error)
}

type usageService struct {
	userService UserService
	assetRepo   repository.AssetRepository
	usageRepo   repository.CreditUsageRepository
}

func NewUsageService(userService UserService, assetRepo repository.AssetRepository, usageRepo repository.CreditUsageRepository) UsageService {
	return &usageService{
		userService: userService,
		assetRepo:   assetRepo,
		usageRepo:   usageRepo,
	}
}

func (s *usageService) GetDashboardStats(ctx context.Context, identity models.Identity) (*models.DashboardStatsResponse, error) {
	user, err := s.userService.GetOrCreate(ctx, identity)
	if err != nil {
		return nil, err
	}

	counts := make(map[models.AssetType]int64, len(models.AssetTypes))
	var total int64
	for _, assetType := range models.AssetTypes {
		n, err := s.assetRepo.CountByUserAndType(ctx, user.ID, assetType)
		if err != nil {
			return nil, err
		}
		counts[assetType] = n
		total += n
	}

	creditsUsed, err := s.usageRepo.CountByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.DashboardStatsResponse{
		User:        user,
		TotalAssets: total,
		CreditsUsed: creditsUsed,
		AssetCounts: counts,
		PlanLimits:  models.PlanLimits,
	}, nil
}
