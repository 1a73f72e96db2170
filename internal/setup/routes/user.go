package routes

import (
	"net/http"

	"github.com/ledgerly/budget-backend/internal/infra/mail"
	"github.com/ledgerly/budget-backend/internal/setup/adapters"
	"github.com/ledgerly/budget-backend/internal/setup/factory"
	"go.mongodb.org/mongo-driver/mongo"
)

func UserRoutes(server *http.ServeMux, db *mongo.Database, mailer mail.Mailer) {
	server.Handle("POST /signup", adapters.AdaptRoute(factory.MakeSignupController(db)))

	server.Handle("POST /login", adapters.AdaptRoute(factory.MakeLoginController(db)))

	server.Handle("POST /reset-password", adapters.AdaptRoute(
		factory.MakeResetPasswordInstructionsController(db, mailer),
	))

	server.Handle("POST /reset-password/{resetPasswordToken}", adapters.AdaptRoute(
		factory.MakeResetPasswordController(db),
	))
}
