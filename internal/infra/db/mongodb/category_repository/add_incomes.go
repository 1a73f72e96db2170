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

type AddIncomesRepository struct {
	Db          *mongo.Database
	ExportCache usecase.InvalidateExportCacheRepository
}

func NewAddIncomesRepository(db *mongo.Database, exportCache usecase.InvalidateExportCacheRepository) *AddIncomesRepository {
	return &AddIncomesRepository{
		Db:          db,
		ExportCache: exportCache,
	}
}

// AddIncomes fans the income out to every named category owned by the user.
// The $push append is the store's native atomic update, so concurrent appends
// to the same category both survive. Each matched document receives its own
// copy of the income.
func (r *AddIncomesRepository) AddIncomes(categoryNames []string, income models.Income, userId primitive.ObjectID) error {
	collection := r.Db.Collection("categories")

	filter := bson.M{
		"user_id": userId,
		"name":    bson.M{"$in": categoryNames},
	}

	update := bson.M{
		"$push": bson.M{"incomes": income},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result, err := collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.ModifiedCount == 0 {
		return errs.ErrNotFound
	}

	r.ExportCache.InvalidateExport(userId)

	return nil
}
