package config

import (
	"net/http"

	"github.com/ledgerly/budget-backend/internal/infra/mail"
	"github.com/ledgerly/budget-backend/internal/setup/routes"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(server *http.ServeMux, db *mongo.Database, mailer mail.Mailer) {
	apiServer := http.NewServeMux()
	routes.UserRoutes(apiServer, db, mailer)
	routes.CategoryRoutes(apiServer, db)

	server.Handle("/api/", http.StripPrefix("/api", apiServer))
}
