package category_repository

import (
	"context"
	"log"
	"time"

	"github.com/ledgerly/budget-backend/internal/domain/errs"
	"github.com/ledgerly/budget-backend/internal/domain/models"
	"github.com/ledgerly/budget-backend/internal/domain/usecase"
	"github.com/ledgerly/budget-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateCategoryRepository struct {
	Db                 *mongo.Database
	AppendCategoryLink usecase.AppendCategoryLinkRepository
	ExportCache        usecase.InvalidateExportCacheRepository
}

func NewCreateCategoryRepository(
	db *mongo.Database,
	appendCategoryLink usecase.AppendCategoryLinkRepository,
	exportCache usecase.InvalidateExportCacheRepository,
) *CreateCategoryRepository {
	return &CreateCategoryRepository{
		Db:                 db,
		AppendCategoryLink: appendCategoryLink,
		ExportCache:        exportCache,
	}
}

// Create inserts the category and appends its id to the owning user's
// back-reference set. The two writes form one logical transaction: if the
// link append fails the insert is compensated so no category is ever left
// without a valid owner link.
func (r *CreateCategoryRepository) Create(name string, userId primitive.ObjectID) (*models.Category, error) {
	collection := r.Db.Collection("categories")

	categoryToSave := &models.Category{
		Id:        primitive.NewObjectID(),
		Name:      name,
		UserId:    userId,
		Incomes:   []models.Income{},
		Outcomes:  []models.Outcome{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, categoryToSave)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errs.ErrDuplicateName
		}
		return nil, err
	}

	if err := r.AppendCategoryLink.AppendCategoryId(userId, categoryToSave.Id); err != nil {
		if _, delErr := collection.DeleteOne(ctx, bson.M{"_id": categoryToSave.Id}); delErr != nil {
			log.Printf("create category: compensation failed for %s: %v", categoryToSave.Id.Hex(), delErr)
		}
		return nil, err
	}

	r.ExportCache.InvalidateExport(userId)

	return categoryToSave, nil
}
