package services

import (
	"errors"
	"fmt"
	"time"

	"ecommerce_admin_backend/internal/models"
	"ecommerce_admin_backend/internal/repositories"
)

var (
	ErrInvalidPeriod    = errors.New("period must be one of: day, week, month, year")
	ErrInvalidDateRange = errors.New("start date must be before end date")
)

// Period granularities accepted by the revenue endpoints.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// ProductSalesRequest bounds the product-sales report.
type ProductSalesRequest struct {
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	ProductID  *int64 `json:"product_id"`
	CategoryID *int64 `json:"category_id"`
}

// AnalyticsService computes revenue and sales aggregates over calendar
// windows.
type AnalyticsService interface {
	GetSalesSummary(startDate, endDate time.Time) (*models.SalesSummary, error)
	GetRevenueComparison(period string, anchor time.Time) (*models.RevenueSummary, error)
	GetProductSales(startDate, endDate time.Time, productID, categoryID *int64) ([]models.ProductSalesRow, error)
}

type analyticsService struct {
	analyticsRepo repositories.AnalyticsRepository
}

// NewAnalyticsService creates a new instance of AnalyticsService.
func NewAnalyticsService(ar repositories.AnalyticsRepository) AnalyticsService {
	return &analyticsService{analyticsRepo: ar}
}

func (s *analyticsService) GetSalesSummary(startDate, endDate time.Time) (*models.SalesSummary, error) {
	if endDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}
	start := startOfDay(startDate)
	end := endOfDay(endDate)
	summary, err := s.analyticsRepo.GetSalesSummary(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get sales summary: %w", err)
	}
	return summary, nil
}

// GetRevenueComparison sums revenue over the period containing anchor and
// over the immediately preceding period of the same granularity.
// PercentageChange is nil when the previous period had no revenue.
func (s *analyticsService) GetRevenueComparison(period string, anchor time.Time) (*models.RevenueSummary, error) {
	start, end, err := periodBounds(period, anchor)
	if err != nil {
		return nil, err
	}
	revenue, err := s.analyticsRepo.SumRevenue(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum current-period revenue: %w", err)
	}

	prevAnchor := previousAnchor(period, anchor)
	prevStart, prevEnd, err := periodBounds(period, prevAnchor)
	if err != nil {
		return nil, err
	}
	previousRevenue, err := s.analyticsRepo.SumRevenue(prevStart, prevEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to sum previous-period revenue: %w", err)
	}

	summary := &models.RevenueSummary{
		Revenue:           revenue,
		Period:            period,
		ComparisonRevenue: previousRevenue,
	}
	if previousRevenue > 0 {
		change := (revenue - previousRevenue) / previousRevenue * 100
		summary.PercentageChange = &change
	}
	return summary, nil
}

func (s *analyticsService) GetProductSales(startDate, endDate time.Time, productID, categoryID *int64) ([]models.ProductSalesRow, error) {
	if endDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}
	rows, err := s.analyticsRepo.GetProductSales(repositories.ProductSalesFilters{
		StartDate:  startOfDay(startDate),
		EndDate:    endOfDay(endDate),
		ProductID:  productID,
		CategoryID: categoryID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get product sales: %w", err)
	}
	return rows, nil
}

// periodBounds returns the inclusive start and end timestamps of the
// period containing anchor: the anchor's calendar day, its ISO week
// (Monday through Sunday), its calendar month, or its calendar year.
func periodBounds(period string, anchor time.Time) (time.Time, time.Time, error) {
	switch period {
	case PeriodDay:
		start := startOfDay(anchor)
		return start, lastInstant(start.AddDate(0, 0, 1)), nil
	case PeriodWeek:
		daysSinceMonday := (int(anchor.Weekday()) + 6) % 7
		start := startOfDay(anchor).AddDate(0, 0, -daysSinceMonday)
		return start, lastInstant(start.AddDate(0, 0, 7)), nil
	case PeriodMonth:
		start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		return start, lastInstant(start.AddDate(0, 1, 0)), nil
	case PeriodYear:
		start := time.Date(anchor.Year(), 1, 1, 0, 0, 0, 0, anchor.Location())
		return start, lastInstant(start.AddDate(1, 0, 0)), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: got '%s'", ErrInvalidPeriod, period)
	}
}

// previousAnchor shifts anchor into the preceding period of the same
// granularity. Month and year shifts clamp the day-of-month to the last
// valid day of the target month (Mar 31 -> Feb 28/29) instead of
// constructing a nonexistent date.
func previousAnchor(period string, anchor time.Time) time.Time {
	switch period {
	case PeriodWeek:
		return anchor.AddDate(0, 0, -7)
	case PeriodMonth:
		year, month := anchor.Year(), anchor.Month()-1
		if anchor.Month() == time.January {
			year, month = year-1, time.December
		}
		return clampedDate(year, month, anchor.Day(), anchor.Location())
	case PeriodYear:
		return clampedDate(anchor.Year()-1, anchor.Month(), anchor.Day(), anchor.Location())
	default: // day
		return anchor.AddDate(0, 0, -1)
	}
}

// clampedDate builds a midnight timestamp, lowering day to the last day
// of the month when it would otherwise overflow.
func clampedDate(year int, month time.Month, day int, loc *time.Location) time.Time {
	if last := daysIn(year, month, loc); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// daysIn reports the number of days in the given month.
func daysIn(year int, month time.Month, loc *time.Location) int {
	// Day zero of the next month normalizes to this month's last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// lastInstant steps back from the exclusive bound so BETWEEN queries stay
// inclusive on both ends.
func lastInstant(exclusiveEnd time.Time) time.Time {
	return exclusiveEnd.Add(-time.Nanosecond)
}

func endOfDay(t time.Time) time.Time {
	return lastInstant(startOfDay(t).AddDate(0, 0, 1))
}
