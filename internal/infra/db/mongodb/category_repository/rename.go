package category_repository

import (
	"context"
	"time"

	"github.com/ledgerly/budget-backend/internal/domain/errs"
	"github.com/ledgerly/budget-backend/internal/domain/models"
	"github.com/ledgerly/budget-backend/internal/domain/usecase"
	"github.com/ledgerly/budget-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RenameCategoryRepository struct {
	Db          *mongo.Database
	ExportCache usecase.InvalidateExportCacheRepository
}

func NewRenameCategoryRepository(db *mongo.Database, exportCache usecase.InvalidateExportCacheRepository) *RenameCategoryRepository {
	return &RenameCategoryRepository{
		Db:          db,
		ExportCache: exportCache,
	}
}

func (r *RenameCategoryRepository) Rename(categoryId primitive.ObjectID, newName string, userId primitive.ObjectID) error {
	collection := r.Db.Collection("categories")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var category models.Category
	err := collection.FindOne(ctx, bson.M{"_id": categoryId, "user_id": userId}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return errs.ErrNotFound
		}
		return err
	}

	// the default category is the merge and fallback target; it keeps its name
	if category.IsDefault() {
		return errs.ErrForbidden
	}

	update := bson.M{
		"$set": bson.M{"name": newName, "updated_at": time.Now()},
	}

	_, err = collection.UpdateOne(ctx, bson.M{"_id": category.Id}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrDuplicateName
		}
		return err
	}

	r.ExportCache.InvalidateExport(userId)

	return nil
}
