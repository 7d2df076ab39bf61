// internal/services/asset_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"marketing-asset-backend/internal/generator"
	"marketing-asset-backend/internal/models"
	"marketing-asset-backend/internal/prompts"
	"marketing-asset-backend/internal/repository"
	apperrors "marketing-asset-backend/pkg/errors"
)

// GenerationCost is the number of credits charged per generated asset.
const GenerationCost = 1

type AssetService interface {
	Generate(ctx context.Context, identity models.Identity, req *models.GenerateAssetRequest) (*models.GenerateAssetResponse, error)
	GetAsset(ctx context.Context, id string) (*models.Asset, error)
	ListAssets(ctx context.Context, identity models.Identity) ([]models.Asset, error)
	DeleteAsset(ctx context.Context, id string) error
}

type AssetServiceOptions struct {
	// RefundOnFailure returns the debited credits when generation or
	// persistence fails after the debit. Off keeps the debit.
	RefundOnFailure bool
	ListLimit       int
}

type assetService struct {
	userService    UserService
	creditsService CreditsService
	assetRepo      repository.AssetRepository
	usageRepo      repository.CreditUsageRepository
	generator      generator.ContentGenerator
	opts           AssetServiceOptions
}

func NewAssetService(
	userService UserService,
	creditsService CreditsService,
	assetRepo repository.AssetRepository,
	usageRepo repository.CreditUsageRepository,
	gen generator.ContentGenerator,
	opts AssetServiceOptions,
) AssetService {
	if opts.ListLimit <= 0 {
		opts.ListLimit = repository.DefaultListLimit
	}
	return &assetService{
		userService:    userService,
		creditsService: creditsService,
		assetRepo:      assetRepo,
		usageRepo:      usageRepo,
		generator:      gen,
		opts:           opts,
	}
}

// Generate validates the request, debits the generation cost, produces the
// content and records both the asset and its credit usage.
func (s *assetService) Generate(ctx context.Context, identity models.Identity, req *models.GenerateAssetRequest) (*models.GenerateAssetResponse, error) {
	// Validation happens before any side effect, so a bad request never costs a credit.
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	// Once started, the workflow is not cancelled by the caller going away:
	// a debit that has been applied must reach its asset.
	ctx = context.WithoutCancel(ctx)

	user, err := s.userService.GetOrCreate(ctx, identity)
	if err != nil {
		return nil, err
	}

	ok, err := s.creditsService.TryDebit(ctx, user, GenerationCost)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewInsufficientCreditsError()
	}

	prompt, err := prompts.Render(req.AssetType, prompts.FieldsFromRequest(req))
	if err != nil {
		return nil, s.abort(ctx, user, apperrors.NewValidationError(err.Error()))
	}

	content, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, s.abort(ctx, user, err)
	}

	now := time.Now().UTC()
	asset := &models.Asset{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		Title:       fmt.Sprintf("%s - %s", req.BusinessName, req.AssetType.DisplayName()),
		AssetType:   req.AssetType,
		Content:     content,
		PromptData:  req.PromptData(),
		CreditsUsed: GenerationCost,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.assetRepo.Create(ctx, asset); err != nil {
		return nil, s.abort(ctx, user, apperrors.NewInternalError(fmt.Errorf("save asset: %w", err)))
	}

	usage := &models.CreditUsage{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		AssetID:         asset.ID,
		CreditsConsumed: GenerationCost,
		Timestamp:       now,
	}
	if err := s.usageRepo.Create(ctx, usage); err != nil {
		if s.opts.RefundOnFailure {
			if _, delErr := s.assetRepo.Delete(ctx, asset.ID); delErr != nil {
				zap.L().Error("Failed to remove asset after usage write failure",
					zap.String("asset_id", asset.ID),
					zap.Error(delErr))
			}
		}
		return nil, s.abort(ctx, user, apperrors.NewInternalError(fmt.Errorf("record credit usage: %w", err)))
	}

	current, err := s.userService.GetByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	zap.L().Info("Asset generated",
		zap.String("asset_id", asset.ID),
		zap.String("user_id", user.ID),
		zap.String("asset_type", string(asset.AssetType)),
		zap.Int("credits_used", asset.CreditsUsed),
		zap.Int("remaining_credits", current.Credits))

	return &models.GenerateAssetResponse{
		Asset:            asset,
		RemainingCredits: current.Credits,
	}, nil
}

// abort ends a generation that already took credits. The debit is kept unless
// refunds are enabled.
func (s *assetService) abort(ctx context.Context, user *models.User, cause error) error {
	if !s.opts.RefundOnFailure {
		zap.L().Warn("Generation failed after debit; credits not refunded",
			zap.String("user_id", user.ID),
			zap.Int("credits", GenerationCost),
			zap.Error(cause))
		return cause
	}

	if err := s.creditsService.Refund(ctx, user, GenerationCost); err != nil {
		zap.L().Error("Failed to refund credits after generation failure",
			zap.String("user_id", user.ID),
			zap.Int("credits", GenerationCost),
			zap.NamedError("cause", cause),
			zap.Error(err))
	}
	return cause
}

func (s *assetService) GetAsset(ctx context.Context, id string) (*models.Asset, error) {
	return s.assetRepo.GetByID(ctx, id)
}

func (s *assetService) ListAssets(ctx context.Context, identity models.Identity) ([]models.Asset, error) {
	user, err := s.userService.GetOrCreate(ctx, identity)
	if err != nil {
		return nil, err
	}
	return s.assetRepo.ListByUser(ctx, user.ID, s.opts.ListLimit)
}

func (s *assetService) DeleteAsset(ctx context.Context, id string) error {
	removed, err := s.assetRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.NewAssetNotFoundError()
	}

	zap.L().Info("Asset deleted", zap.String("asset_id", id))
	return nil
}
