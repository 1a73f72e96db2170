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

type AddOutcomesRepository struct {
	Db          *mongo.Database
	ExportCache usecase.InvalidateExportCacheRepository
}

func NewAddOutcomesRepository(db *mongo.Database, exportCache usecase.InvalidateExportCacheRepository) *AddOutcomesRepository {
	return &AddOutcomesRepository{
		Db:          db,
		ExportCache: exportCache,
	}
}

func (r *AddOutcomesRepository) AddOutcomes(categoryNames []string, outcome models.Outcome, userId primitive.ObjectID) error {
	collection := r.Db.Collection("categories")

	filter := bson.M{
		"user_id": userId,
		"name":    bson.M{"$in": categoryNames},
	}

	update := bson.M{
		"$push": bson.M{"outcomes": outcome},
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
