package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"ecommerce_admin_backend/internal/models"
)

// ProductSalesFilters bounds the product-sales report. The date window is
// mandatory; product and category narrow it further.
type ProductSalesFilters struct {
	StartDate  time.Time
	EndDate    time.Time
	ProductID  *int64
	CategoryID *int64
}

// AnalyticsRepository defines the aggregate queries behind the analytics
// endpoints. Windows are inclusive on both ends; empty windows sum to zero.
type AnalyticsRepository interface {
	GetSalesSummary(start, end time.Time) (*models.SalesSummary, error)
	SumRevenue(start, end time.Time) (float64, error)
	GetProductSales(filters ProductSalesFilters) ([]models.ProductSalesRow, error)
}

type analyticsRepository struct {
	db *sql.DB
}

// NewAnalyticsRepository creates a new instance of AnalyticsRepository.
func NewAnalyticsRepository(db *sql.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetSalesSummary(start, end time.Time) (*models.SalesSummary, error) {
	summary := &models.SalesSummary{}

	query := `SELECT COALESCE(SUM(total_amount), 0), COUNT(id)
	          FROM sales
	          WHERE transaction_date BETWEEN $1 AND $2`
	err := r.db.QueryRow(query, start, end).Scan(&summary.TotalSales, &summary.TotalOrders)
	if err != nil {
		return nil, fmt.Errorf("%w: querying sales summary: %v", ErrDatabaseError, err)
	}

	itemsQuery := `SELECT COALESCE(SUM(si.quantity), 0)
	               FROM sale_items si
	               JOIN sales s ON si.sale_id = s.id
	               WHERE s.transaction_date BETWEEN $1 AND $2`
	err = r.db.QueryRow(itemsQuery, start, end).Scan(&summary.ItemsSold)
	if err != nil {
		return nil, fmt.Errorf("%w: querying items sold: %v", ErrDatabaseError, err)
	}
	return summary, nil
}

func (r *analyticsRepository) SumRevenue(start, end time.Time) (float64, error) {
	var revenue float64
	query := `SELECT COALESCE(SUM(total_amount), 0)
	          FROM sales
	          WHERE transaction_date BETWEEN $1 AND $2`
	err := r.db.QueryRow(query, start, end).Scan(&revenue)
	if err != nil {
		return 0, fmt.Errorf("%w: summing revenue: %v", ErrDatabaseError, err)
	}
	return revenue, nil
}

func (r *analyticsRepository) GetProductSales(filters ProductSalesFilters) ([]models.ProductSalesRow, error) {
	result := []models.ProductSalesRow{}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
	    SELECT si.product_id, p.name, c.name, si.quantity, si.unit_price, si.subtotal, s.transaction_date
	    FROM sale_items si
	    JOIN sales s ON si.sale_id = s.id
	    JOIN products p ON si.product_id = p.id
	    JOIN categories c ON p.category_id = c.id
	    WHERE s.transaction_date BETWEEN $1 AND $2`)

	args := []interface{}{filters.StartDate, filters.EndDate}
	argCounter := 3
	if filters.ProductID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND si.product_id = $%d", argCounter))
		args = append(args, *filters.ProductID)
		argCounter++
	}
	if filters.CategoryID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND p.category_id = $%d", argCounter))
		args = append(args, *filters.CategoryID)
		argCounter++
	}
	queryBuilder.WriteString(" ORDER BY s.transaction_date, si.id")

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying product sales: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var row models.ProductSalesRow
		if err := rows.Scan(
			&row.ProductID, &row.ProductName, &row.CategoryName,
			&row.Quantity, &row.UnitPrice, &row.Subtotal, &row.TransactionDate,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning product sales row: %v", ErrDatabaseError, err)
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating product sales rows: %v", ErrDatabaseError, err)
	}
	return result, nil
}
