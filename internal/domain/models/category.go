package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultCategoryName is the reserved per-user category every account owns.
// It is the fallback target for entries without a category and the merge
// target when another category is deleted.
const DefaultCategoryName = "default"

const (
	OutcomeStatusProcessing = "Processing"
	OutcomeStatusCompleted  = "Completed"
	OutcomeStatusRejected   = "Rejected"
)

type Income struct {
	Description string    `json:"description" bson:"description"`
	Total       float64   `json:"total" bson:"total"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
}

type Outcome struct {
	Description string    `json:"description" bson:"description"`
	Total       float64   `json:"total" bson:"total"`
	Status      string    `json:"status" bson:"status"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
}

type Category struct {
	Id        primitive.ObjectID `json:"id" bson:"_id"`
	Name      string             `json:"name" bson:"name"`
	UserId    primitive.ObjectID `json:"userId" bson:"user_id"`
	Incomes   []Income           `json:"incomes" bson:"incomes"`
	Outcomes  []Outcome          `json:"outcomes" bson:"outcomes"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}

// IncomeGroup and OutcomeGroup are entry-level query results: one group per
// category that still has matching entries, rows inside a group already sorted.
type IncomeGroup struct {
	CategoryId primitive.ObjectID `json:"categoryId"`
	Incomes    []Income           `json:"incomes"`
}

type OutcomeGroup struct {
	CategoryId primitive.ObjectID `json:"categoryId"`
	Outcomes   []Outcome          `json:"outcomes"`
}

func (c *Category) IsDefault() bool {
	return c.Name == DefaultCategoryName
}

func IsValidOutcomeStatus(status string) bool {
	switch status {
	case OutcomeStatusProcessing, OutcomeStatusCompleted, OutcomeStatusRejected:
		return true
	}
	return false
}
