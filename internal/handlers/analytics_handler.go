package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"ledgerly/internal/analytics"
	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/services"
)

// AnalyticsHandler handles analytics-related requests
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetSummary handles the retrieval of the user's spending summary
// @Summary     Get spending summary
// @Description Aggregate totals by category, month, and weekday for the current month
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} analytics.Summary "Spending summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.analyticsService.MonthlySummary(userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ComparePeriods handles period-over-period comparisons
// @Summary     Compare two periods
// @Description Compare totals and per-category spending between two periods
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       period_type query string false "Period granularity (day, week, month, year); defaults to month"
// @Param       current     query string false "Current period label; defaults to the period containing today"
// @Param       previous    query string false "Previous period label; defaults to the period before current"
// @Success     200 {object} analytics.Comparison "Period comparison"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/compare [get]
func (h *AnalyticsHandler) ComparePeriods(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	periodType := analytics.PeriodType(c.DefaultQuery("period_type", string(analytics.PeriodMonth)))
	comparison, err := h.analyticsService.ComparePeriods(userID, periodType, c.Query("current"), c.Query("previous"), time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, comparison)
}

// DetectAnomalies handles anomaly detection over the user's transactions
// @Summary     Detect anomalies
// @Description Flag unusually large transactions and unusually busy days
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       threshold_factor query number false "Sensitivity multiplier; defaults to 2.0"
// @Success     200 {object} map[string]interface{} "Detected anomalies"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/anomalies [get]
func (h *AnalyticsHandler) DetectAnomalies(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	factor := 0.0
	if v := c.Query("threshold_factor"); v != "" {
		factor, err = strconv.ParseFloat(v, 64)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid threshold_factor"))
			return
		}
	}

	anomalies, err := h.analyticsService.DetectAnomalies(userID, factor)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"anomalies": anomalies, "count": len(anomalies)})
}

// ForecastExpenses handles expense forecasting
// @Summary     Forecast expenses
// @Description Project future monthly expenses from historical spending
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       months query int false "Number of months to forecast; defaults to 3"
// @Success     200 {object} analytics.Forecast "Expense forecast"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/forecast [get]
func (h *AnalyticsHandler) ForecastExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	months := 0
	if v := c.Query("months"); v != "" {
		months, err = strconv.Atoi(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid months"))
			return
		}
	}

	forecast, err := h.analyticsService.ForecastExpenses(userID, months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, forecast)
}

// GetSuggestions handles the retrieval of savings suggestions
// @Summary     Get savings suggestions
// @Description Surface budget warnings, spending increases, and likely subscriptions
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Savings suggestions"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/suggestions [get]
func (h *AnalyticsHandler) GetSuggestions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	suggestions, err := h.analyticsService.Suggestions(userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions, "count": len(suggestions)})
}

// GetBudgetProgress handles the retrieval of per-category budget progress
// @Summary     Get budget progress
// @Description Report current-month spending against each budgeted category
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Budget progress"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/budgets [get]
func (h *AnalyticsHandler) GetBudgetProgress(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	progress, err := h.analyticsService.BudgetProgress(userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": progress})
}
