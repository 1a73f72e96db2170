package helpers

import (
	"time"

	"github.com/ledgerly/budget-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// BuildEntryMergeUpdate builds the update that appends every income and
// outcome of the given category onto another one. $each keeps the source
// order and appends after the target's existing entries, so the merge adds
// exactly len(incomes)+len(outcomes) entries and loses none. Returns nil when
// the category holds no entries and there is nothing to write.
func BuildEntryMergeUpdate(category *models.Category, now time.Time) bson.M {
	push := bson.M{}
	if len(category.Incomes) > 0 {
		push["incomes"] = bson.M{"$each": category.Incomes}
	}
	if len(category.Outcomes) > 0 {
		push["outcomes"] = bson.M{"$each": category.Outcomes}
	}

	if len(push) == 0 {
		return nil
	}

	return bson.M{
		"$push": push,
		"$set":  bson.M{"updated_at": now},
	}
}
