package usecase

import (
	"github.com/ledgerly/budget-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateUserRepository interface {
	Create(email string, hashedPassword string) (*models.User, error)
}

type DeleteUserRepository interface {
	Delete(userId primitive.ObjectID) error
}

type FindUserByEmailRepository interface {
	FindByEmail(email string) (*models.User, error)
}

type FindUserByIdRepository interface {
	FindById(userId primitive.ObjectID) (*models.User, error)
}

type UpdatePasswordRepository interface {
	UpdatePassword(email string, hashedPassword string) error
}

type SetResetTokenRepository interface {
	SetResetToken(email string, token string) error
}

// Link bookkeeping between a user and its categories. The category
// repositories depend on these so that category structure changes and the
// owning user's back-reference set move together.
type AppendCategoryLinkRepository interface {
	AppendCategoryId(userId primitive.ObjectID, categoryId primitive.ObjectID) error
}

type RemoveCategoryLinkRepository interface {
	RemoveCategoryId(userId primitive.ObjectID, categoryId primitive.ObjectID) error
}
