package user_repository

import (
	"context"
	"time"

	"github.com/ledgerly/budget-backend/internal/domain/errs"
	"github.com/ledgerly/budget-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdatePasswordRepository struct {
	Db *mongo.Database
}

func NewUpdatePasswordRepository(db *mongo.Database) *UpdatePasswordRepository {
	return &UpdatePasswordRepository{
		Db: db,
	}
}

// UpdatePassword swaps the hash and clears the reset token in the same write,
// so a reset token is single-use.
func (r *UpdatePasswordRepository) UpdatePassword(email string, hashedPassword string) error {
	collection := r.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"password":             hashedPassword,
			"reset_password_token": "",
			"updated_at":           time.Now(),
		},
	}

	result, err := collection.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}
