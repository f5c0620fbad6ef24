package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jmlee/storefront-backend/config"
	"github.com/jmlee/storefront-backend/internal/app/model"
	"github.com/jmlee/storefront-backend/internal/app/repository"
	"github.com/jmlee/storefront-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// Imports a product catalog from an XLSX file. Expected columns:
// Code | Name | Description | Price | Category | Image | Featured | Used
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	productRepo := repository.NewProductRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	products, skipped, err := readProductsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total products to import: %d (skipped %d invalid rows)\n", len(products), skipped)

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	batchSize := 500
	fmt.Printf("Starting bulk import with batch size: %d\n", batchSize)
	if err := productRepo.BulkCreate(products, batchSize); err != nil {
		log.Fatal("Failed to bulk create products:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total products imported: %d\n", len(products))
}

func readProductsFromXLSX(filePath string) ([]model.Product, int, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, 0, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("no data found in XLSX file")
	}

	var products []model.Product
	seenCodes := make(map[string]bool)
	skipped := 0

	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 5 {
			skipped++
			continue
		}

		code := strings.TrimSpace(cell(row, 0))
		name := strings.TrimSpace(cell(row, 1))
		description := strings.TrimSpace(cell(row, 2))
		priceStr := strings.TrimSpace(cell(row, 3))
		category := strings.TrimSpace(cell(row, 4))
		image := strings.TrimSpace(cell(row, 5))
		featured := parseBool(cell(row, 6))
		used := parseBool(cell(row, 7))

		if name == "" || category == "" {
			skipped++
			continue
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			skipped++
			continue
		}

		if len(code) > model.ProductCodeMaxLen {
			skipped++
			continue
		}
		if code != "" {
			if seenCodes[code] {
				skipped++
				continue
			}
			seenCodes[code] = true
		}

		product := model.Product{
			ProductCode: code,
			Name:        name,
			Description: description,
			Price:       price,
			Category:    category,
			Image:       image,
			Featured:    featured,
			IsUsed:      used,
		}
		if image != "" {
			product.Images = []string{image}
		}

		products = append(products, product)
	}

	return products, skipped, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "y", "yes":
		return true
	}
	return false
}
