package user_repository

import (
	"context"

	"github.com/ledgerly/budget-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteUserRepository struct {
	Db *mongo.Database
}

func NewDeleteUserRepository(db *mongo.Database) *DeleteUserRepository {
	return &DeleteUserRepository{
		Db: db,
	}
}

func (r *DeleteUserRepository) Delete(userId primitive.ObjectID) error {
	collection := r.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.DeleteOne(ctx, bson.M{"_id": userId})
	return err
}
