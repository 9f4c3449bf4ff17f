package models

import "time"

// Inventory holds the current stock level for exactly one product.
// Quantity never goes negative; every quantity change produces an
// InventoryLog row.
type Inventory struct {
	ID                int64      `json:"id" db:"id"`
	ProductID         int64      `json:"product_id" db:"product_id" binding:"required"`
	Quantity          int        `json:"quantity" db:"quantity" binding:"gte=0"`
	LowStockThreshold int        `json:"low_stock_threshold" db:"low_stock_threshold"`
	LastRestocked     *time.Time `json:"last_restocked,omitempty" db:"last_restocked"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// InventoryLog is an append-only audit record of a quantity change.
type InventoryLog struct {
	ID               int64     `json:"id" db:"id"`
	ProductID        int64     `json:"product_id" db:"product_id"`
	PreviousQuantity int       `json:"previous_quantity" db:"previous_quantity"`
	NewQuantity      int       `json:"new_quantity" db:"new_quantity"`
	ChangeReason     *string   `json:"change_reason,omitempty" db:"change_reason"`
	Timestamp        time.Time `json:"timestamp" db:"timestamp"`
}

// LowStockProduct is an inventory row joined with its product name,
// reported when quantity is at or below the product's own threshold.
type LowStockProduct struct {
	ProductID       int64  `json:"product_id"`
	ProductName     string `json:"product_name"`
	CurrentQuantity int    `json:"current_quantity"`
	Threshold       int    `json:"threshold"`
}
