package service

import (
	"errors"
	"fmt"

	"github.com/jmlee/storefront-backend/internal/app/model"
	"github.com/jmlee/storefront-backend/internal/app/repository"
	"github.com/jmlee/storefront-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryNameTaken = errors.New("category name already exists")
)

// CategoryInUseError blocks deletion of a category that products still
// reference by name; Count is surfaced to the admin UI.
type CategoryInUseError struct {
	Count int64
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("%d products reference this category", e.Count)
}

// CategoryInput carries the admin form fields. On update, empty fields
// keep their previous values.
type CategoryInput struct {
	Name        string
	Icon        string
	Description string
}

type CategoryService interface {
	ListCategories() ([]model.Category, error)
	GetCategoryByID(id uint) (*model.Category, error)
	CreateCategory(input CategoryInput) (*model.Category, error)
	UpdateCategory(id uint, input CategoryInput) (*model.Category, error)
	DeleteCategory(id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

func (s *categoryService) ListCategories() ([]model.Category, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list categories", err)
		return nil, err
	}

	logger.Debug("Categories listed", map[string]interface{}{
		"count": len(categories),
	})
	return categories, nil
}

func (s *categoryService) GetCategoryByID(id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) CreateCategory(input CategoryInput) (*model.Category, error) {
	logger.Info("Creating category", map[string]interface{}{
		"name": input.Name,
	})

	if err := s.checkNameAvailable(input.Name, 0); err != nil {
		return nil, err
	}

	category := &model.Category{
		Name:        input.Name,
		Icon:        input.Icon,
		Description: input.Description,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		logger.Error("Failed to create category", err, map[string]interface{}{
			"name": input.Name,
		})
		return nil, err
	}

	logger.Info("Category created successfully", map[string]interface{}{
		"category_id": category.ID,
		"name":        category.Name,
	})
	return category, nil
}

func (s *categoryService) UpdateCategory(id uint, input CategoryInput) (*model.Category, error) {
	logger.Info("Updating category", map[string]interface{}{
		"category_id": id,
		"name":        input.Name,
	})

	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot update: category not found", map[string]interface{}{
				"category_id": id,
			})
			return nil, ErrCategoryNotFound
		}
		logger.Error("Failed to check category existence", err, map[string]interface{}{
			"category_id": id,
		})
		return nil, err
	}

	if input.Name != "" && input.Name != category.Name {
		if err := s.checkNameAvailable(input.Name, id); err != nil {
			return nil, err
		}
		category.Name = input.Name
	}
	if input.Icon != "" {
		category.Icon = input.Icon
	}
	if input.Description != "" {
		category.Description = input.Description
	}

	if err := s.categoryRepo.Update(category); err != nil {
		logger.Error("Failed to update category", err, map[string]interface{}{
			"category_id": id,
		})
		return nil, err
	}

	logger.Info("Category updated successfully", map[string]interface{}{
		"category_id": category.ID,
		"name":        category.Name,
	})
	return category, nil
}

func (s *categoryService) DeleteCategory(id uint) error {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot delete: category not found", map[string]interface{}{
				"category_id": id,
			})
			return ErrCategoryNotFound
		}
		logger.Error("Failed to check category existence", err, map[string]interface{}{
			"category_id": id,
		})
		return err
	}

	count, err := s.productRepo.CountByCategoryName(category.Name)
	if err != nil {
		logger.Error("Failed to count referencing products", err, map[string]interface{}{
			"category_id": id,
			"name":        category.Name,
		})
		return err
	}
	if count > 0 {
		logger.Warn("Cannot delete category: still referenced by products", map[string]interface{}{
			"category_id":   id,
			"name":          category.Name,
			"product_count": count,
		})
		return &CategoryInUseError{Count: count}
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		logger.Error("Failed to delete category", err, map[string]interface{}{
			"category_id": id,
		})
		return err
	}

	logger.Info("Category deleted successfully", map[string]interface{}{
		"category_id": id,
		"name":        category.Name,
	})
	return nil
}

// checkNameAvailable enforces name uniqueness, excluding the category with
// selfID when updating.
func (s *categoryService) checkNameAvailable(name string, selfID uint) error {
	existing, err := s.categoryRepo.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		logger.Error("Failed to check category name", err, map[string]interface{}{
			"name": name,
		})
		return err
	}

	if existing.ID != selfID {
		logger.Warn("Category name already taken", map[string]interface{}{
			"name":        name,
			"existing_id": existing.ID,
		})
		return ErrCategoryNameTaken
	}
	return nil
}
