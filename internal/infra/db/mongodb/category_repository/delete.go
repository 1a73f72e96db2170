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

type DeleteCategoryRepository struct {
	Db                 *mongo.Database
	RemoveCategoryLink usecase.RemoveCategoryLinkRepository
	ExportCache        usecase.InvalidateExportCacheRepository
}

func NewDeleteCategoryRepository(
	db *mongo.Database,
	removeCategoryLink usecase.RemoveCategoryLinkRepository,
	exportCache usecase.InvalidateExportCacheRepository,
) *DeleteCategoryRepository {
	return &DeleteCategoryRepository{
		Db:                 db,
		RemoveCategoryLink: removeCategoryLink,
		ExportCache:        exportCache,
	}
}

// Delete removes a category after migrating its entries into the user's
// default category. The merge commits before the category document and the
// user link are touched, so a failure partway can duplicate bookkeeping but
// never lose entries.
func (r *DeleteCategoryRepository) Delete(name string, userId primitive.ObjectID) error {
	if name == models.DefaultCategoryName {
		return errs.ErrForbidden
	}

	collection := r.Db.Collection("categories")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var category models.Category
	err := collection.FindOne(ctx, bson.M{"name": name, "user_id": userId}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return errs.ErrNotFound
		}
		return err
	}

	var defaultCategory models.Category
	err = collection.FindOne(ctx, bson.M{"name": models.DefaultCategoryName, "user_id": userId}).Decode(&defaultCategory)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return errs.ErrInvariantViolation
		}
		return err
	}

	if update := helpers.BuildEntryMergeUpdate(&category, time.Now()); update != nil {
		if _, err := collection.UpdateOne(ctx, bson.M{"_id": defaultCategory.Id}, update); err != nil {
			return err
		}
	}

	if _, err := collection.DeleteOne(ctx, bson.M{"_id": category.Id}); err != nil {
		return err
	}

	if err := r.RemoveCategoryLink.RemoveCategoryId(userId, category.Id); err != nil {
		return err
	}

	r.ExportCache.InvalidateExport(userId)

	return nil
}
