package export_repository

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"github.com/ledgerly/budget-backend/internal/domain/models"
	"github.com/ledgerly/budget-backend/internal/infra/db/mongodb/helpers"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const exportCacheTTL = 5 * time.Minute

type ExportCategoriesRepository struct {
	Db       *mongo.Database
	RedisUrl string
}

func NewExportCategoriesRepository(db *mongo.Database, redisUrl string) *ExportCategoriesRepository {
	return &ExportCategoriesRepository{
		Db:       db,
		RedisUrl: redisUrl,
	}
}

// Export builds an xlsx workbook with one sheet per entry kind plus a
// category summary. The serialized workbook is cached in Redis (base64, TTL
// bounded) keyed by user, so repeated downloads within the window skip the
// rebuild.
func (r *ExportCategoriesRepository) Export(userId primitive.ObjectID) ([]byte, error) {
	cacheKey := exportCacheKey(userId)

	if r.RedisUrl != "" {
		if cached, err := r.findCachedExcel(cacheKey); err == nil {
			return cached, nil
		}
	}

	categories, err := r.findCategories(userId)
	if err != nil {
		return nil, err
	}

	file, err := buildWorkbook(categories)
	if err != nil {
		return nil, err
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	if r.RedisUrl != "" {
		if err := r.saveExcelToCache(cacheKey, buf.Bytes()); err != nil {
			log.Printf("export cache: saving for %s: %v", userId.Hex(), err)
		}
	}

	return buf.Bytes(), nil
}

func (r *ExportCategoriesRepository) findCategories(userId primitive.ObjectID) ([]models.Category, error) {
	collection := r.Db.Collection("categories")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{"user_id": userId})
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	if err = cursor.All(context.Background(), &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *ExportCategoriesRepository) findCachedExcel(key string) ([]byte, error) {
	redisClient := helpers.RedisHelper(r.RedisUrl)
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	encoded, err := redisClient.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	return base64.StdEncoding.DecodeString(encoded)
}

func (r *ExportCategoriesRepository) saveExcelToCache(key string, data []byte) error {
	redisClient := helpers.RedisHelper(r.RedisUrl)
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	encoded := base64.StdEncoding.EncodeToString(data)
	return redisClient.Set(ctx, key, encoded, exportCacheTTL).Err()
}

func buildWorkbook(categories []models.Category) (*excelize.File, error) {
	file := excelize.NewFile()

	file.SetSheetName("Sheet1", "Categories")
	for i, header := range []string{"Name", "Incomes", "Outcomes", "Created At"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue("Categories", cell, header)
	}
	for i, category := range categories {
		row := i + 2
		file.SetCellValue("Categories", fmt.Sprintf("A%d", row), category.Name)
		file.SetCellValue("Categories", fmt.Sprintf("B%d", row), len(category.Incomes))
		file.SetCellValue("Categories", fmt.Sprintf("C%d", row), len(category.Outcomes))
		file.SetCellValue("Categories", fmt.Sprintf("D%d", row), category.CreatedAt.Format(time.RFC3339))
	}

	if _, err := file.NewSheet("Incomes"); err != nil {
		return nil, err
	}
	for i, header := range []string{"Category", "Description", "Total", "Created At"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue("Incomes", cell, header)
	}
	incomeRow := 2
	for _, category := range categories {
		for _, income := range category.Incomes {
			file.SetCellValue("Incomes", fmt.Sprintf("A%d", incomeRow), category.Name)
			file.SetCellValue("Incomes", fmt.Sprintf("B%d", incomeRow), income.Description)
			file.SetCellValue("Incomes", fmt.Sprintf("C%d", incomeRow), income.Total)
			file.SetCellValue("Incomes", fmt.Sprintf("D%d", incomeRow), income.CreatedAt.Format(time.RFC3339))
			incomeRow++
		}
	}

	if _, err := file.NewSheet("Outcomes"); err != nil {
		return nil, err
	}
	for i, header := range []string{"Category", "Description", "Total", "Status", "Created At"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue("Outcomes", cell, header)
	}
	outcomeRow := 2
	for _, category := range categories {
		for _, outcome := range category.Outcomes {
			file.SetCellValue("Outcomes", fmt.Sprintf("A%d", outcomeRow), category.Name)
			file.SetCellValue("Outcomes", fmt.Sprintf("B%d", outcomeRow), outcome.Description)
			file.SetCellValue("Outcomes", fmt.Sprintf("C%d", outcomeRow), outcome.Total)
			file.SetCellValue("Outcomes", fmt.Sprintf("D%d", outcomeRow), outcome.Status)
			file.SetCellValue("Outcomes", fmt.Sprintf("E%d", outcomeRow), outcome.CreatedAt.Format(time.RFC3339))
			outcomeRow++
		}
	}

	return file, nil
}
