// internal/services/user_service.go
package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"marketing-asset-backend/internal/models"
	"marketing-asset-backend/internal/repository"
	apperrors "marketing-asset-backend/pkg/errors"
)

type UserService interface {
	// GetOrCreate returns the user for identity, creating it with the starting
	// balance on first access.
	GetOrCreate(ctx context.Context, identity models.Identity) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

func (s *userService) GetOrCreate(ctx context.Context, identity models.Identity) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, identity.Email)
	if err == nil {
		return user, nil
	}
	if !apperrors.IsErrorType(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	user = &models.User{
		ID:        uuid.NewString(),
		Email:     identity.Email,
		Name:      identity.Name,
		Plan:      models.PlanFree,
		Credits:   models.InitialCredits,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Another request created the same identity first; use its record.
		if errors.Is(err, repository.ErrDuplicateUser) {
			return s.userRepo.GetByEmail(ctx, identity.Email)
		}
		return nil, err
	}

	zap.L().Info("User created",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email),
		zap.Int("credits", user.Credits))

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
