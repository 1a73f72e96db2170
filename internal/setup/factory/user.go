package factory

import (
	"github.com/ledgerly/budget-backend/internal/infra/db/mongodb/category_repository"
	"github.com/ledgerly/budget-backend/internal/infra/db/mongodb/user_repository"
	"github.com/ledgerly/budget-backend/internal/infra/mail"
	controllers "github.com/ledgerly/budget-backend/internal/presentation/controllers/user"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeSignupController(db *mongo.Database) *controllers.SignupController {
	findUserByEmail := user_repository.NewFindUserByEmailRepository(db)
	createUser := user_repository.NewCreateUserRepository(db)
	deleteUser := user_repository.NewDeleteUserRepository(db)
	categoryLinks := user_repository.NewCategoryLinkRepository(db)
	createCategory := category_repository.NewCreateCategoryRepository(db, categoryLinks, makeExportCacheInvalidator())
	return controllers.NewSignupController(findUserByEmail, createUser, deleteUser, createCategory)
}

func MakeLoginController(db *mongo.Database) *controllers.LoginController {
	findUserByEmail := user_repository.NewFindUserByEmailRepository(db)
	return controllers.NewLoginController(findUserByEmail)
}

func MakeResetPasswordInstructionsController(db *mongo.Database, mailer mail.Mailer) *controllers.ResetPasswordInstructionsController {
	findUserByEmail := user_repository.NewFindUserByEmailRepository(db)
	setResetToken := user_repository.NewSetResetTokenRepository(db)
	return controllers.NewResetPasswordInstructionsController(findUserByEmail, setResetToken, mailer)
}

func MakeResetPasswordController(db *mongo.Database) *controllers.ResetPasswordController {
	findUserByEmail := user_repository.NewFindUserByEmailRepository(db)
	updatePassword := user_repository.NewUpdatePasswordRepository(db)
	return controllers.NewResetPasswordController(findUserByEmail, updatePassword)
}
