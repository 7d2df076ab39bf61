// internal/repository/user_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketing-asset-backend/internal/models"
	apperrors "marketing-asset-backend/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateUser is returned by Create when the email is already taken.
var ErrDuplicateUser = errors.New("user already exists")

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(collection *mongo.Collection) UserRepository {
	return &userRepository{
		collection: collection,
	}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateUser
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewUserNotFoundError()
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) TryDebit(ctx context.Context, user *models.User, amount int) (bool, error) {
	if amount <= 0 {
		return false, fmt.Errorf("debit amount must be positive, got %d", amount)
	}

	// The balance check and decrement happen in one conditional update so two
	// concurrent debits can never both pass a balance that only covers one.
	filter := bson.M{
		"_id":     user.ID,
		"credits": bson.M{"$gte": amount},
	}
	update := bson.M{
		"$inc": bson.M{"credits": -amount},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.User
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}

	*user = updated
	return true, nil
}

func (r *userRepository) Credit(ctx context.Context, user *models.User, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("credit amount must be positive, got %d", amount)
	}

	update := bson.M{
		"$inc": bson.M{"credits": amount},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": user.ID}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewUserNotFoundError()
		}
		return err
	}

	*user = updated
	return nil
}
