package models

// Category groups products for catalog browsing and analytics filtering.
type Category struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name" binding:"required"`
	Description *string `json:"description,omitempty" db:"description"`
}
