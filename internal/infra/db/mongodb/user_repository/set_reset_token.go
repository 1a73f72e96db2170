package user_repository

import (
	"context"
	"time"

	"github.com/ledgerly/budget-backend/internal/domain/errs"
	"github.com/ledgerly/budget-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SetResetTokenRepository struct {
	Db *mongo.Database
}

func NewSetResetTokenRepository(db *mongo.Database) *SetResetTokenRepository {
	return &SetResetTokenRepository{
		Db: db,
	}
}

func (r *SetResetTokenRepository) SetResetToken(email string, token string) error {
	collection := r.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"reset_password_token": token,
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
