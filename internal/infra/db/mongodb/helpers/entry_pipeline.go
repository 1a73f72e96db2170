package helpers

import (
	"sort"
	"time"

	"github.com/ledgerly/budget-backend/internal/domain/models"
	presentationHelpers "github.com/ledgerly/budget-backend/internal/presentation/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entry queries run as one pipeline over the categories fetched for a user:
//
//	flatten -> filter -> sort -> regroup
//
// Filtering happens per entry row, never per category: a category whose
// outcomes only partially match keeps its matching rows and drops the rest.
// A category left with zero matching rows produces no group at all.
// Regrouping preserves the sorted order of rows inside each group and orders
// groups by the first appearance of their category after sorting.

// EntryRow is one flattened entry tagged with its parent category. Status is
// empty for income rows.
type EntryRow struct {
	CategoryId  primitive.ObjectID
	Description string
	Total       float64
	Status      string
	CreatedAt   time.Time
}

func FlattenIncomes(categories []models.Category) []EntryRow {
	var rows []EntryRow
	for _, category := range categories {
		for _, income := range category.Incomes {
			rows = append(rows, EntryRow{
				CategoryId:  category.Id,
				Description: income.Description,
				Total:       income.Total,
				CreatedAt:   income.CreatedAt,
			})
		}
	}
	return rows
}

func FlattenOutcomes(categories []models.Category) []EntryRow {
	var rows []EntryRow
	for _, category := range categories {
		for _, outcome := range category.Outcomes {
			rows = append(rows, EntryRow{
				CategoryId:  category.Id,
				Description: outcome.Description,
				Total:       outcome.Total,
				Status:      outcome.Status,
				CreatedAt:   outcome.CreatedAt,
			})
		}
	}
	return rows
}

// FilterRows applies every predicate of the filter at the row level. Date
// bounds are inclusive calendar days: an entry created any time on endDate
// still matches.
func FilterRows(rows []EntryRow, filters *presentationHelpers.EntryFilterParams) []EntryRow {
	var startDate, endDate time.Time
	if filters.StartDate != "" {
		startDate, _ = time.Parse("2006-01-02", filters.StartDate)
	}
	if filters.EndDate != "" {
		parsed, _ := time.Parse("2006-01-02", filters.EndDate)
		endDate = parsed.AddDate(0, 0, 1)
	}

	var filtered []EntryRow
	for _, row := range rows {
		if filters.Status != "" && row.Status != filters.Status {
			continue
		}
		if filters.TotalFrom != nil && row.Total < *filters.TotalFrom {
			continue
		}
		if filters.TotalTo != nil && row.Total > *filters.TotalTo {
			continue
		}
		if !startDate.IsZero() && row.CreatedAt.Before(startDate) {
			continue
		}
		if !endDate.IsZero() && !row.CreatedAt.Before(endDate) {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}

// SortRows sorts rows by the requested property, falling back to the given
// defaults when no sortProperty was supplied. The sort is stable so equal
// rows keep their original relative order.
func SortRows(rows []EntryRow, sortProperty string, sortDirection string, defaultProperty string, defaultDirection string) {
	property := sortProperty
	direction := sortDirection
	if property == "" {
		property = defaultProperty
		direction = defaultDirection
	}

	less := func(a, b EntryRow) bool {
		switch property {
		case "description":
			return a.Description < b.Description
		case "status":
			return a.Status < b.Status
		case "createdAt":
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return a.Total < b.Total
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if direction == "desc" {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}

func RegroupIncomes(rows []EntryRow) []models.IncomeGroup {
	index := make(map[primitive.ObjectID]int)
	var groups []models.IncomeGroup

	for _, row := range rows {
		i, ok := index[row.CategoryId]
		if !ok {
			i = len(groups)
			index[row.CategoryId] = i
			groups = append(groups, models.IncomeGroup{CategoryId: row.CategoryId})
		}
		groups[i].Incomes = append(groups[i].Incomes, models.Income{
			Description: row.Description,
			Total:       row.Total,
			CreatedAt:   row.CreatedAt,
		})
	}
	return groups
}

func RegroupOutcomes(rows []EntryRow) []models.OutcomeGroup {
	index := make(map[primitive.ObjectID]int)
	var groups []models.OutcomeGroup

	for _, row := range rows {
		i, ok := index[row.CategoryId]
		if !ok {
			i = len(groups)
			index[row.CategoryId] = i
			groups = append(groups, models.OutcomeGroup{CategoryId: row.CategoryId})
		}
		groups[i].Outcomes = append(groups[i].Outcomes, models.Outcome{
			Description: row.Description,
			Total:       row.Total,
			Status:      row.Status,
			CreatedAt:   row.CreatedAt,
		})
	}
	return groups
}
