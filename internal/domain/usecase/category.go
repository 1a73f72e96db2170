package usecase

import (
	"github.com/ledgerly/budget-backend/internal/domain/models"
	"github.com/ledgerly/budget-backend/internal/presentation/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateCategoryRepository interface {
	Create(name string, userId primitive.ObjectID) (*models.Category, error)
}

type DeleteCategoryRepository interface {
	Delete(name string, userId primitive.ObjectID) error
}

type RenameCategoryRepository interface {
	Rename(categoryId primitive.ObjectID, newName string, userId primitive.ObjectID) error
}

type AddIncomesRepository interface {
	AddIncomes(categoryNames []string, income models.Income, userId primitive.ObjectID) error
}

type AddOutcomesRepository interface {
	AddOutcomes(categoryNames []string, outcome models.Outcome, userId primitive.ObjectID) error
}

type FindCategoriesRepository interface {
	Find(filters *helpers.CategoryFilterParams) ([]models.Category, error)
}

type FindCategoryByNameRepository interface {
	FindByName(name string, userId primitive.ObjectID) (*models.Category, error)
}

type FindCategoryByIdRepository interface {
	FindById(categoryId primitive.ObjectID, userId primitive.ObjectID) (*models.Category, error)
}

type FindIncomesRepository interface {
	FindIncomes(filters *helpers.EntryFilterParams) ([]models.IncomeGroup, error)
}

type FindOutcomesRepository interface {
	FindOutcomes(filters *helpers.EntryFilterParams) ([]models.OutcomeGroup, error)
}

type ExportCategoriesRepository interface {
	Export(userId primitive.ObjectID) ([]byte, error)
}

// Mutation repositories call this after a committed write so the user's
// cached export never outlives the data it was built from.
type InvalidateExportCacheRepository interface {
	InvalidateExport(userId primitive.ObjectID)
}
