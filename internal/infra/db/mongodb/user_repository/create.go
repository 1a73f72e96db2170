package user_repository

import (
	"context"
	"time"

	"github.com/ledgerly/budget-backend/internal/domain/errs"
	"github.com/ledgerly/budget-backend/internal/domain/models"
	"github.com/ledgerly/budget-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateUserRepository struct {
	Db *mongo.Database
}

func NewCreateUserRepository(db *mongo.Database) *CreateUserRepository {
	return &CreateUserRepository{
		Db: db,
	}
}

func (r *CreateUserRepository) Create(email string, hashedPassword string) (*models.User, error) {
	collection := r.Db.Collection("users")

	userToSave := &models.User{
		Id:         primitive.NewObjectID(),
		Email:      email,
		Password:   hashedPassword,
		Categories: []primitive.ObjectID{},
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, userToSave)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errs.ErrEmailExists
		}
		return nil, err
	}

	return userToSave, nil
}
