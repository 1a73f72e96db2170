package factory

import (
	"os"

	"github.com/ledgerly/budget-backend/internal/infra/db/mongodb/category_repository"
	"github.com/ledgerly/budget-backend/internal/infra/db/mongodb/export_repository"
	"github.com/ledgerly/budget-backend/internal/infra/db/mongodb/user_repository"
	controllers "github.com/ledgerly/budget-backend/internal/presentation/controllers/category"
	"go.mongodb.org/mongo-driver/mongo"
)

func makeExportCacheInvalidator() *export_repository.InvalidateExportCacheRepository {
	return export_repository.NewInvalidateExportCacheRepository(os.Getenv("REDIS_URL"))
}

func MakeCreateCategoryController(db *mongo.Database) *controllers.CreateCategoryController {
	categoryLinks := user_repository.NewCategoryLinkRepository(db)
	createCategory := category_repository.NewCreateCategoryRepository(db, categoryLinks, makeExportCacheInvalidator())
	findCategoryByName := category_repository.NewFindCategoryByNameRepository(db)
	return controllers.NewCreateCategoryController(createCategory, findCategoryByName)
}

func MakeDeleteCategoryController(db *mongo.Database) *controllers.DeleteCategoryController {
	categoryLinks := user_repository.NewCategoryLinkRepository(db)
	deleteCategory := category_repository.NewDeleteCategoryRepository(db, categoryLinks, makeExportCacheInvalidator())
	return controllers.NewDeleteCategoryController(deleteCategory)
}

func MakeRenameCategoryController(db *mongo.Database) *controllers.RenameCategoryController {
	renameCategory := category_repository.NewRenameCategoryRepository(db, makeExportCacheInvalidator())
	return controllers.NewRenameCategoryController(renameCategory)
}

func MakeAddIncomesController(db *mongo.Database) *controllers.AddIncomesController {
	addIncomes := category_repository.NewAddIncomesRepository(db, makeExportCacheInvalidator())
	return controllers.NewAddIncomesController(addIncomes)
}

func MakeAddOutcomesController(db *mongo.Database) *controllers.AddOutcomesController {
	addOutcomes := category_repository.NewAddOutcomesRepository(db, makeExportCacheInvalidator())
	return controllers.NewAddOutcomesController(addOutcomes)
}

func MakeGetCategoriesController(db *mongo.Database) *controllers.GetCategoriesController {
	findCategories := category_repository.NewFindCategoriesRepository(db)
	return controllers.NewGetCategoriesController(findCategories)
}

func MakeGetIncomesController(db *mongo.Database) *controllers.GetIncomesController {
	findIncomes := category_repository.NewFindIncomesRepository(db)
	return controllers.NewGetIncomesController(findIncomes)
}

func MakeGetOutcomesController(db *mongo.Database) *controllers.GetOutcomesController {
	findOutcomes := category_repository.NewFindOutcomesRepository(db)
	return controllers.NewGetOutcomesController(findOutcomes)
}

func MakeExportCategoriesController(db *mongo.Database) *controllers.ExportCategoriesController {
	exportCategories := export_repository.NewExportCategoriesRepository(db, os.Getenv("REDIS_URL"))
	return controllers.NewExportCategoriesController(exportCategories)
}
