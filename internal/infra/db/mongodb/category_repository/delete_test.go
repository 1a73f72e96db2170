package category_repository

import (
	"testing"

	"github.com/ledgerly/budget-backend/internal/domain/errs"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDelete_DefaultCategoryIsForbidden(t *testing.T) {
	// the guard fires before any storage access
	repo := NewDeleteCategoryRepository(nil, nil, nil)

	err := repo.Delete("default", primitive.NewObjectID())

	assert.ErrorIs(t, err, errs.ErrForbidden)
}
