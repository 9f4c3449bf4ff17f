package models

import "time"

// SalesSummary aggregates sales over a date-bounded window.
// All fields are zero over a window with no sales.
type SalesSummary struct {
	TotalSales  float64 `json:"total_sales"`
	TotalOrders int     `json:"total_orders"`
	ItemsSold   int     `json:"items_sold"`
}

// RevenueSummary compares a period's revenue with the immediately
// preceding period of the same granularity. PercentageChange is nil
// when the previous period had no positive revenue.
type RevenueSummary struct {
	Revenue           float64  `json:"revenue"`
	Period            string   `json:"period"`
	ComparisonRevenue float64  `json:"comparison_revenue"`
	PercentageChange  *float64 `json:"percentage_change"`
}

// ProductSalesRow is one sold line item joined with product and
// category names for the product-sales report.
type ProductSalesRow struct {
	ProductID       int64     `json:"product_id"`
	ProductName     string    `json:"product_name"`
	CategoryName    string    `json:"category_name"`
	Quantity        int       `json:"quantity"`
	UnitPrice       float64   `json:"unit_price"`
	Subtotal        float64   `json:"subtotal"`
	TransactionDate time.Time `json:"transaction_date"`
}
