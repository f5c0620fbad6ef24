package model

import (
	"time"
)

// Category rows are deleted for real, not soft-deleted: the unique name
// index must release the name as soon as the category is gone, and deletes
// are already guarded by the product reference count.
type Category struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Icon        string    `gorm:"type:varchar(20)" json:"icon"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}
