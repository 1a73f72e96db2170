package user_repository

import (
	"context"

	"github.com/ledgerly/budget-backend/internal/domain/errs"
	"github.com/ledgerly/budget-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CategoryLinkRepository maintains the categories back-reference set on the
// user document. Both updates are single atomic $push/$pull operations.
type CategoryLinkRepository struct {
	Db *mongo.Database
}

func NewCategoryLinkRepository(db *mongo.Database) *CategoryLinkRepository {
	return &CategoryLinkRepository{
		Db: db,
	}
}

func (r *CategoryLinkRepository) AppendCategoryId(userId primitive.ObjectID, categoryId primitive.ObjectID) error {
	collection := r.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result, err := collection.UpdateOne(ctx, bson.M{"_id": userId}, bson.M{
		"$push": bson.M{"categories": categoryId},
	})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}

func (r *CategoryLinkRepository) RemoveCategoryId(userId primitive.ObjectID, categoryId primitive.ObjectID) error {
	collection := r.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result, err := collection.UpdateOne(ctx, bson.M{"_id": userId}, bson.M{
		"$pull": bson.M{"categories": categoryId},
	})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}
