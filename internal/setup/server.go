package setup

import (
	"net/http"
	"os"

	"github.com/ledgerly/budget-backend/internal/infra/db/mongodb/helpers"
	"github.com/ledgerly/budget-backend/internal/infra/mail"
	"github.com/ledgerly/budget-backend/internal/setup/config"
)

func Server() *http.ServeMux {
	mux := http.NewServeMux()

	db := helpers.MongoHelper(os.Getenv("MONGO_URL"), os.Getenv("MONGO_DATABASE"))
	mailer := mail.NewSMTPMailer()

	config.SetupRoutes(mux, db, mailer)

	return mux
}
