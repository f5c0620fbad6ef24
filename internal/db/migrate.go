package db

import (
	"github.com/jmlee/storefront-backend/internal/app/model"
	"github.com/jmlee/storefront-backend/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.Category{},
		&model.Product{},
		&model.VisitorLog{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Seed adds the default categories when the table is empty.
func Seed() error {
	var count int64
	if err := DB.Model(&model.Category{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Categories already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	logger.Info("Seeding default categories...")

	categories := []model.Category{
		{Name: "Electronics", Icon: "💻", Description: "Computers, phones and accessories"},
		{Name: "Clothing", Icon: "👕", Description: "Apparel and fashion"},
		{Name: "Shoes", Icon: "👟"},
		{Name: "Home", Icon: "🏠", Description: "Furniture and household goods"},
		{Name: "Sports", Icon: "⚽"},
		{Name: "Other", Icon: "📦"},
	}

	for _, category := range categories {
		if err := DB.Create(&category).Error; err != nil {
			logger.Error("Failed to create category", err, map[string]interface{}{
				"category": category.Name,
			})
			return err
		}
	}

	logger.Info("Default categories seeded successfully", map[string]interface{}{
		"count": len(categories),
	})
	return nil
}
