package models

import "time"

// Sale is an externally-identified order committed atomically together
// with its items and the resulting inventory changes. Sales are never
// updated after creation.
type Sale struct {
	ID              int64      `json:"id" db:"id"`
	OrderID         string     `json:"order_id" db:"order_id"`
	TotalAmount     float64    `json:"total_amount" db:"total_amount"`
	TransactionDate time.Time  `json:"transaction_date" db:"transaction_date"`
	Marketplace     string     `json:"marketplace" db:"marketplace"`
	Items           []SaleItem `json:"items"`
}

// SaleItem is one line of a sale. Subtotal is caller-declared and
// validated against the sale total, not recomputed.
type SaleItem struct {
	ID        int64   `json:"id" db:"id"`
	SaleID    int64   `json:"sale_id" db:"sale_id"`
	ProductID int64   `json:"product_id" db:"product_id"`
	Quantity  int     `json:"quantity" db:"quantity"`
	UnitPrice float64 `json:"unit_price" db:"unit_price"`
	Subtotal  float64 `json:"subtotal" db:"subtotal"`
}
