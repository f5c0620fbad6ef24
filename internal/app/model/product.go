package model

import (
	"time"

	"gorm.io/gorm"
)

// ProductCodeMaxLen bounds the short product code shown on labels.
const ProductCodeMaxLen = 3

type Product struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	ProductCode string  `gorm:"type:varchar(3)" json:"productCode,omitempty"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	// Category references Category.Name, not a foreign key.
	Category      string         `gorm:"type:varchar(100);index" json:"category"`
	Image         string         `json:"image"`
	Images        []string       `gorm:"serializer:json" json:"images,omitempty"`
	StockQuantity *int           `json:"stock,omitempty"`
	Featured      bool           `gorm:"default:false" json:"featured"`
	IsUsed        bool           `gorm:"default:false" json:"isUsed"`
	Sold          bool           `gorm:"default:false" json:"sold"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string {
	return "products"
}
