package models

import "time"

// Product is a sellable catalog entry identified by a unique SKU.
type Product struct {
	ID          int64      `json:"id" db:"id"`
	Name        string     `json:"name" db:"name" binding:"required"`
	Description *string    `json:"description,omitempty" db:"description"`
	Price       float64    `json:"price" db:"price" binding:"required,gte=0"`
	SKU         string     `json:"sku" db:"sku" binding:"required"`
	CategoryID  int64      `json:"category_id" db:"category_id" binding:"required"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" db:"updated_at"`
	Category    *Category  `json:"category,omitempty"`
}

// ProductFilters defines the available filters for listing products.
type ProductFilters struct {
	CategoryID *int64 `form:"category_id"`
	Skip       int    `form:"skip"`
	Limit      int    `form:"limit"`
}
