package service

import (
	"errors"

	"github.com/jmlee/storefront-backend/internal/app/model"
	"github.com/jmlee/storefront-backend/internal/app/repository"
	"github.com/jmlee/storefront-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrProductCodeTooLong = errors.New("product code must be at most 3 characters")
)

// ProductListOptions mirrors the public catalog filter:
// exact category name, case-insensitive substring search, featured-only
// flag and optional price bounds.
type ProductListOptions struct {
	Category     string
	Search       string
	FeaturedOnly bool
	MinPrice     *float64
	MaxPrice     *float64
	Limit        int
	Offset       int
}

// ProductInput carries the admin form fields for create and update.
// Images[0] becomes the canonical single-image field so older clients that
// only know `image` keep working.
type ProductInput struct {
	ProductCode   string
	Name          string
	Description   string
	Price         float64
	Category      string
	Image         string
	Images        []string
	StockQuantity *int
	Featured      bool
	IsUsed        bool
	Sold          bool
}

type ProductService interface {
	ListProducts(opts ProductListOptions) ([]model.Product, error)
	GetProductByID(id uint) (*model.Product, error)
	CreateProduct(input ProductInput) (*model.Product, error)
	UpdateProduct(id uint, input ProductInput) (*model.Product, error)
	DeleteProduct(id uint) error
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) ListProducts(opts ProductListOptions) ([]model.Product, error) {
	logger.Debug("Listing products", map[string]interface{}{
		"category": opts.Category,
		"search":   opts.Search,
		"featured": opts.FeaturedOnly,
		"limit":    opts.Limit,
		"offset":   opts.Offset,
	})

	products, err := s.productRepo.FindWithFilter(repository.ProductFilter{
		Category:     opts.Category,
		Search:       opts.Search,
		FeaturedOnly: opts.FeaturedOnly,
		MinPrice:     opts.MinPrice,
		MaxPrice:     opts.MaxPrice,
		Limit:        opts.Limit,
		Offset:       opts.Offset,
	})
	if err != nil {
		logger.Error("Failed to list products", err)
		return nil, err
	}

	logger.Info("Products listed", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

func (s *productService) GetProductByID(id uint) (*model.Product, error) {
	logger.Debug("Fetching product by ID", map[string]interface{}{
		"product_id": id,
	})

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Product not found", map[string]interface{}{
				"product_id": id,
			})
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}
	return product, nil
}

func (s *productService) CreateProduct(input ProductInput) (*model.Product, error) {
	if err := validateProductInput(input); err != nil {
		logger.Warn("Rejecting invalid product", map[string]interface{}{
			"name":  input.Name,
			"error": err.Error(),
		})
		return nil, err
	}

	product := productFromInput(input)

	logger.Info("Creating new product", map[string]interface{}{
		"name":     product.Name,
		"category": product.Category,
		"price":    product.Price,
	})

	if err := s.productRepo.Create(product); err != nil {
		logger.Error("Failed to create product", err, map[string]interface{}{
			"name": product.Name,
		})
		return nil, err
	}

	logger.Info("Product created successfully", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})
	return product, nil
}

func (s *productService) UpdateProduct(id uint, input ProductInput) (*model.Product, error) {
	if err := validateProductInput(input); err != nil {
		logger.Warn("Rejecting invalid product update", map[string]interface{}{
			"product_id": id,
			"error":      err.Error(),
		})
		return nil, err
	}

	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot update: product not found", map[string]interface{}{
				"product_id": id,
			})
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to check product existence", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}

	product := productFromInput(input)
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt

	if err := s.productRepo.Update(product); err != nil {
		logger.Error("Failed to update product", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}

	logger.Info("Product updated successfully", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})
	return product, nil
}

func (s *productService) DeleteProduct(id uint) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot delete: product not found", map[string]interface{}{
				"product_id": id,
			})
			return ErrProductNotFound
		}
		logger.Error("Failed to check product existence", err, map[string]interface{}{
			"product_id": id,
		})
		return err
	}

	// Product deletion is unconditional: carts hold snapshots, nothing
	// references the row.
	if err := s.productRepo.Delete(id); err != nil {
		logger.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": id,
		})
		return err
	}

	logger.Info("Product deleted successfully", map[string]interface{}{
		"product_id": id,
	})
	return nil
}

func validateProductInput(input ProductInput) error {
	if input.Price < 0 {
		return ErrInvalidPrice
	}
	if len(input.ProductCode) > model.ProductCodeMaxLen {
		return ErrProductCodeTooLong
	}
	return nil
}

func productFromInput(input ProductInput) *model.Product {
	image := input.Image
	if len(input.Images) > 0 {
		image = input.Images[0]
	}

	return &model.Product{
		ProductCode:   input.ProductCode,
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		Category:      input.Category,
		Image:         image,
		Images:        input.Images,
		StockQuantity: input.StockQuantity,
		Featured:      input.Featured,
		IsUsed:        input.IsUsed,
		Sold:          input.Sold,
	}
}
