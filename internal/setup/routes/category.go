package routes

import (
	"net/http"

	"github.com/ledgerly/budget-backend/internal/setup/adapters"
	"github.com/ledgerly/budget-backend/internal/setup/factory"
	"github.com/ledgerly/budget-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func CategoryRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /category", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateCategoryController(db)),
		db,
	))

	server.Handle("DELETE /category", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteCategoryController(db)),
		db,
	))

	server.Handle("PUT /category/incomes", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeAddIncomesController(db)),
		db,
	))

	server.Handle("PUT /category/outcomes", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeAddOutcomesController(db)),
		db,
	))

	server.Handle("PUT /category/{categoryId}/rename", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeRenameCategoryController(db)),
		db,
	))

	server.Handle("GET /category", middlewares.VerifyAccessToken(
		middlewares.AllowCacheHeader(
			adapters.AdaptRoute(factory.MakeGetCategoriesController(db)),
		),
		db,
	))

	server.Handle("GET /category/incomes", middlewares.VerifyAccessToken(
		middlewares.AllowCacheHeader(
			adapters.AdaptRoute(factory.MakeGetIncomesController(db)),
		),
		db,
	))

	server.Handle("GET /category/outcomes", middlewares.VerifyAccessToken(
		middlewares.AllowCacheHeader(
			adapters.AdaptRoute(factory.MakeGetOutcomesController(db)),
		),
		db,
	))

	server.Handle("GET /category/export", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeExportCategoriesController(db)),
		db,
	))
}
