package helpers

import (
	"time"

	presentationHelpers "github.com/ledgerly/budget-backend/internal/presentation/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var categorySortFields = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

func BuildCategoryFilter(filters *presentationHelpers.CategoryFilterParams) bson.M {
	filter := bson.M{
		"user_id": filters.UserId,
	}

	if filters.CategoryName != "" {
		filter["name"] = filters.CategoryName
	}

	createdAt := bson.M{}
	if filters.StartDate != "" {
		startDate, _ := time.Parse("2006-01-02", filters.StartDate)
		createdAt["$gte"] = startDate
	}
	if filters.EndDate != "" {
		endDate, _ := time.Parse("2006-01-02", filters.EndDate)
		// inclusive calendar day
		createdAt["$lt"] = endDate.AddDate(0, 0, 1)
	}
	if len(createdAt) > 0 {
		filter["created_at"] = createdAt
	}

	return filter
}

func BuildCategorySortOptions(filters *presentationHelpers.CategoryFilterParams) *options.FindOptions {
	opts := options.Find()

	field, ok := categorySortFields[filters.SortProperty]
	if !ok {
		return opts
	}

	direction := 1
	if filters.SortDirection == "desc" {
		direction = -1
	}

	return opts.SetSort(bson.D{{Key: field, Value: direction}})
}
