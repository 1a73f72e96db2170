package category_repository

import (
	"context"

	"github.com/ledgerly/budget-backend/internal/domain/models"
	"github.com/ledgerly/budget-backend/internal/infra/db/mongodb/helpers"
	presentationHelpers "github.com/ledgerly/budget-backend/internal/presentation/helpers"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindCategoriesRepository struct {
	Db *mongo.Database
}

func NewFindCategoriesRepository(db *mongo.Database) *FindCategoriesRepository {
	return &FindCategoriesRepository{
		Db: db,
	}
}

func (r *FindCategoriesRepository) Find(filters *presentationHelpers.CategoryFilterParams) ([]models.Category, error) {
	collection := r.Db.Collection("categories")

	filter := helpers.BuildCategoryFilter(filters)
	opts := helpers.BuildCategorySortOptions(filters)

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	if err = cursor.All(context.Background(), &categories); err != nil {
		return nil, err
	}

	return categories, nil
}
