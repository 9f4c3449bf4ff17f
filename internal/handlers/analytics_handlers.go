package handlers

import (
	"errors"
	"net/http"
	"time"

	"ecommerce_admin_backend/internal/services"
	"ecommerce_admin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// AnalyticsHandler holds the analytics service.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(as services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: as}
}

// GetSalesSummary handles the aggregate totals over a date range.
// start_date and end_date are required YYYY-MM-DD query parameters.
func (h *AnalyticsHandler) GetSalesSummary(c *gin.Context) {
	startDate, endDate, ok := parseDateRange(c)
	if !ok {
		return
	}

	summary, err := h.analyticsService.GetSalesSummary(startDate, endDate)
	if err != nil {
		utils.LogError(err, "GetSalesSummary: Error from analyticsService.GetSalesSummary")
		if errors.Is(err, services.ErrInvalidDateRange) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeInvalidDateRange, "start_date must be before end_date"))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute sales summary"))
		}
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetRevenue handles the period revenue comparison. The period comes
// from the path; the date query parameter anchors the period and
// defaults to today.
func (h *AnalyticsHandler) GetRevenue(c *gin.Context) {
	period := c.Param("period")

	anchor := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid date format, expected YYYY-MM-DD"))
			return
		}
		anchor = parsed
	}

	summary, err := h.analyticsService.GetRevenueComparison(period, anchor)
	if err != nil {
		utils.LogError(err, "GetRevenue: Error from analyticsService.GetRevenueComparison")
		if errors.Is(err, services.ErrInvalidPeriod) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeInvalidPeriod, err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute revenue"))
		}
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetProductSales handles the per-line sales report. Filters arrive as
// a JSON body with a required date range and optional product and
// category narrowing.
func (h *AnalyticsHandler) GetProductSales(c *gin.Context) {
	var req services.ProductSalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "GetProductSales: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error()))
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid start_date format, expected YYYY-MM-DD"))
		return
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid end_date format, expected YYYY-MM-DD"))
		return
	}

	rows, err := h.analyticsService.GetProductSales(startDate, endDate, req.ProductID, req.CategoryID)
	if err != nil {
		utils.LogError(err, "GetProductSales: Error from analyticsService.GetProductSales")
		if errors.Is(err, services.ErrInvalidDateRange) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeInvalidDateRange, "start_date must be before end_date"))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute product sales"))
		}
		return
	}
	c.JSON(http.StatusOK, rows)
}

// parseDateRange reads the required start_date and end_date query
// parameters. On failure it writes the error response and returns
// ok=false.
func parseDateRange(c *gin.Context) (start, end time.Time, ok bool) {
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")
	if startStr == "" || endStr == "" {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "start_date and end_date are required"))
		return time.Time{}, time.Time{}, false
	}
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid start_date format, expected YYYY-MM-DD"))
		return time.Time{}, time.Time{}, false
	}
	end, err = time.Parse(dateLayout, endStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid end_date format, expected YYYY-MM-DD"))
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
