package middlewares

import (
	"net/http"
	"strings"

	"github.com/ledgerly/budget-backend/internal/infra/db/mongodb/user_repository"
	"github.com/ledgerly/budget-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// VerifyAccessToken rejects the request before any controller runs unless the
// bearer token decodes to an existing user whose email still matches the
// claim. On success the owner's id lands in the UserId header for the
// controllers downstream.
func VerifyAccessToken(next http.Handler, db *mongo.Database) http.Handler {
	findUserById := user_repository.NewFindUserByIdRepository(db)
	accessToken := utils.NewAccessTokenUtil()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization := r.Header.Get("Authorization")
		if authorization == "" {
			http.Error(w, "Missing or invalid access token", http.StatusUnauthorized)
			return
		}

		authorization = strings.TrimPrefix(authorization, "Bearer ")

		claims, err := accessToken.DecodeToken(authorization)
		if err != nil {
			http.Error(w, "Invalid or expired access token", http.StatusUnauthorized)
			return
		}

		userId, err := primitive.ObjectIDFromHex(claims.UserId)
		if err != nil {
			http.Error(w, "Invalid or expired access token", http.StatusUnauthorized)
			return
		}

		user, err := findUserById.FindById(userId)
		if err != nil || user == nil || user.Email != claims.Email {
			http.Error(w, "Invalid or expired access token", http.StatusUnauthorized)
			return
		}

		r.Header.Set("UserId", claims.UserId)
		r.Header.Set("UserEmail", user.Email)

		next.ServeHTTP(w, r)
	})
}
