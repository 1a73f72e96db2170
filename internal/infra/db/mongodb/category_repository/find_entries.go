package category_repository

import (
	"context"

	"github.com/ledgerly/budget-backend/internal/domain/models"
	"github.com/ledgerly/budget-backend/internal/infra/db/mongodb/helpers"
	presentationHelpers "github.com/ledgerly/budget-backend/internal/presentation/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Entry queries fetch the user's categories and run the flatten -> filter ->
// sort -> regroup pipeline from the mongodb helpers package. Outcomes default
// to descending by total, incomes to ascending.

type FindOutcomesRepository struct {
	Db *mongo.Database
}

func NewFindOutcomesRepository(db *mongo.Database) *FindOutcomesRepository {
	return &FindOutcomesRepository{
		Db: db,
	}
}

func (r *FindOutcomesRepository) FindOutcomes(filters *presentationHelpers.EntryFilterParams) ([]models.OutcomeGroup, error) {
	categories, err := findCategoriesByUser(r.Db, filters)
	if err != nil {
		return nil, err
	}

	rows := helpers.FlattenOutcomes(categories)
	rows = helpers.FilterRows(rows, filters)
	helpers.SortRows(rows, filters.SortProperty, filters.SortDirection, "total", "desc")

	return helpers.RegroupOutcomes(rows), nil
}

type FindIncomesRepository struct {
	Db *mongo.Database
}

func NewFindIncomesRepository(db *mongo.Database) *FindIncomesRepository {
	return &FindIncomesRepository{
		Db: db,
	}
}

func (r *FindIncomesRepository) FindIncomes(filters *presentationHelpers.EntryFilterParams) ([]models.IncomeGroup, error) {
	categories, err := findCategoriesByUser(r.Db, filters)
	if err != nil {
		return nil, err
	}

	rows := helpers.FlattenIncomes(categories)
	rows = helpers.FilterRows(rows, filters)
	helpers.SortRows(rows, filters.SortProperty, filters.SortDirection, "total", "asc")

	return helpers.RegroupIncomes(rows), nil
}

func findCategoriesByUser(db *mongo.Database, filters *presentationHelpers.EntryFilterParams) ([]models.Category, error) {
	collection := db.Collection("categories")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{"user_id": filters.UserId})
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	if err = cursor.All(context.Background(), &categories); err != nil {
		return nil, err
	}

	return categories, nil
}
