// internal/services/credits_service.go
package services

import (
	"context"

	"go.uber.org/zap"

	"marketing-asset-backend/internal/models"
	"marketing-asset-backend/internal/repository"
)

// CreditsService is the only path through which balances change.
type CreditsService interface {
	// TryDebit reports whether amount was taken from the user's balance.
	// A false result leaves the balance untouched.
	TryDebit(ctx context.Context, user *models.User, amount int) (bool, error)
	// Refund returns credits taken by a debit whose generation did not complete.
	Refund(ctx context.Context, user *models.User, amount int) error
}

type creditsService struct {
	userRepo repository.UserRepository
}

func NewCreditsService(userRepo repository.UserRepository) CreditsService {
	return &creditsService{
		userRepo: userRepo,
	}
}

func (s *creditsService) TryDebit(ctx context.Context, user *models.User, amount int) (bool, error) {
	ok, err := s.userRepo.TryDebit(ctx, user, amount)
	if err != nil {
		return false, err
	}

	if ok {
		zap.L().Debug("Credits debited",
			zap.String("user_id", user.ID),
			zap.Int("amount", amount),
			zap.Int("balance", user.Credits))
	} else {
		zap.L().Info("Debit rejected: insufficient credits",
			zap.String("user_id", user.ID),
			zap.Int("amount", amount))
	}
	return ok, nil
}

func (s *creditsService) Refund(ctx context.Context, user *models.User, amount int) error {
	if err := s.userRepo.Credit(ctx, user, amount); err != nil {
		return err
	}

	zap.L().Info("Credits refunded",
		zap.String("user_id", user.ID),
		zap.Int("amount", amount),
		zap.Int("balance", user.Credits))
	return nil
}
