// Package memory keeps users, assets and credit usage in process memory.
// It satisfies the same repository contracts as the Mongo implementation and
// backs local runs with STORE_DRIVER=memory as well as the service tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"marketing-asset-backend/internal/models"
	"marketing-asset-backend/internal/repository"
	apperrors "marketing-asset-backend/pkg/errors"
)

type storedAsset struct {
	asset models.Asset
	seq   uint64
}

type Store struct {
	mu sync.RWMutex

	users        map[string]models.User
	usersByEmail map[string]string

	assets map[string]storedAsset
	seq    uint64

	usage []models.CreditUsage
}

func New() *Store {
	return &Store{
		users:        make(map[string]models.User),
		usersByEmail: make(map[string]string),
		assets:       make(map[string]storedAsset),
		usage:        make([]models.CreditUsage, 0),
	}
}

func (s *Store) Users() repository.UserRepository { return (*userStore)(s) }

func (s *Store) Assets() repository.AssetRepository { return (*assetStore)(s) }

func (s *Store) CreditUsage() repository.CreditUsageRepository { return (*usageStore)(s) }

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

type userStore Store

func (s *userStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.ID]; exists {
		return repository.ErrDuplicateUser
	}
	if user.Email != "" {
		if _, exists := s.usersByEmail[user.Email]; exists {
			return repository.ErrDuplicateUser
		}
		s.usersByEmail[user.Email] = user.ID
	}
	s.users[user.ID] = *user
	return nil
}

func (s *userStore) GetByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.NewUserNotFoundError()
	}
	return &u, nil
}

func (s *userStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usersByEmail[email]
	if !ok {
		return nil, apperrors.NewUserNotFoundError()
	}
	u := s.users[id]
	return &u, nil
}

func (s *userStore) TryDebit(_ context.Context, user *models.User, amount int) (bool, error) {
	if amount <= 0 {
		return false, fmt.Errorf("debit amount must be positive, got %d", amount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[user.ID]
	if !ok || u.Credits < amount {
		return false, nil
	}
	u.Credits -= amount
	u.UpdatedAt = time.Now().UTC()
	s.users[u.ID] = u

	*user = u
	return true, nil
}

func (s *userStore) Credit(_ context.Context, user *models.User, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("credit amount must be positive, got %d", amount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[user.ID]
	if !ok {
		return apperrors.NewUserNotFoundError()
	}
	u.Credits += amount
	u.UpdatedAt = time.Now().UTC()
	s.users[u.ID] = u

	*user = u
	return nil
}

type assetStore Store

func (s *assetStore) Create(_ context.Context, asset *models.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.assets[asset.ID]; exists {
		return fmt.Errorf("asset %s already exists", asset.ID)
	}
	s.seq++
	s.assets[asset.ID] = storedAsset{asset: *asset, seq: s.seq}
	return nil
}

func (s *assetStore) GetByID(_ context.Context, id string) (*models.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.assets[id]
	if !ok {
		return nil, apperrors.NewAssetNotFoundError()
	}
	a := stored.asset
	return &a, nil
}

func (s *assetStore) ListByUser(_ context.Context, userID string, limit int) ([]models.Asset, error) {
	if limit <= 0 {
		limit = repository.DefaultListLimit
	}

	s.mu.RLock()
	matched := make([]storedAsset, 0)
	for _, stored := range s.assets {
		if stored.asset.UserID == userID {
			matched = append(matched, stored)
		}
	}
	s.mu.RUnlock()

	// Newest first; insertion order breaks timestamp ties.
	sort.Slice(matched, func(i, j int) bool {
		ti, tj := matched[i].asset.CreatedAt, matched[j].asset.CreatedAt
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return matched[i].seq > matched[j].seq
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}

	out := make([]models.Asset, 0, len(matched))
	for _, stored := range matched {
		out = append(out, stored.asset)
	}
	return out, nil
}

func (s *assetStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assets[id]; !ok {
		return false, nil
	}
	delete(s.assets, id)
	return true, nil
}

func (s *assetStore) CountByUserAndType(_ context.Context, userID string, assetType models.AssetType) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, stored := range s.assets {
		if stored.asset.UserID == userID && stored.asset.AssetType == assetType {
			n++
		}
	}
	return n, nil
}

type usageStore Store

func (s *usageStore) Create(_ context.Context, usage *models.CreditUsage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.usage = append(s.usage, *usage)
	return nil
}

func (s *usageStore) CountByUser(_ context.Context, userID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, u := range s.usage {
		if u.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (s *usageStore) GetByAssetID(_ context.Context, assetID string) (*models.CreditUsage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.usage {
		if u.AssetID == assetID {
			rec := u
			return &rec, nil
		}
	}
	return nil, apperrors.NewAppError(apperrors.ErrNotFound, 404, "Credit usage record not found")
}
