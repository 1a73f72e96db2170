package export_repository

import (
	"context"
	"log"

	"github.com/ledgerly/budget-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func exportCacheKey(userId primitive.ObjectID) string {
	return "category_export:" + userId.Hex()
}

// InvalidateExportCacheRepository drops a user's cached workbook. Every
// category mutation goes through it so a re-export inside the TTL window
// never serves entries from before the change.
type InvalidateExportCacheRepository struct {
	RedisUrl string
}

func NewInvalidateExportCacheRepository(redisUrl string) *InvalidateExportCacheRepository {
	return &InvalidateExportCacheRepository{
		RedisUrl: redisUrl,
	}
}

func (r *InvalidateExportCacheRepository) InvalidateExport(userId primitive.ObjectID) {
	if r.RedisUrl == "" {
		return
	}

	redisClient := helpers.RedisHelper(r.RedisUrl)
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	if err := redisClient.Del(ctx, exportCacheKey(userId)).Err(); err != nil {
		log.Printf("export cache: invalidating for %s: %v", userId.Hex(), err)
	}
}
