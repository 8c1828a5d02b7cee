package services

import (
	"time"

	"gorm.io/gorm"

	"ledgerly/internal/analytics"
	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
)

// analyticsService loads a user's data and runs the analytics engine over
// it. The engine itself is pure; this service only assembles snapshots.
type analyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB) AnalyticsServicer {
	return &analyticsService{db: db}
}

// snapshot loads everything the engine needs in one shot.
func (s *analyticsService) snapshot(userID string) ([]models.Transaction, []models.Category, error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Find(&transactions).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var categories []models.Category
	if err := visibleTo(s.db, userID).Find(&categories).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transactions, categories, nil
}

// MonthlySummary aggregates the user's full history, with weekday
// breakdowns restricted to the month containing now.
func (s *analyticsService) MonthlySummary(userID string, now time.Time) (*analytics.Summary, error) {
	transactions, categories, err := s.snapshot(userID)
	if err != nil {
		return nil, err
	}
	summary := analytics.Summarize(transactions, categories, now)
	return &summary, nil
}

// ComparePeriods compares two periods of the user's history.
func (s *analyticsService) ComparePeriods(userID string, periodType analytics.PeriodType, currentLabel, previousLabel string, now time.Time) (*analytics.Comparison, error) {
	transactions, categories, err := s.snapshot(userID)
	if err != nil {
		return nil, err
	}
	cmp := analytics.ComparePeriods(transactions, categories, periodType, currentLabel, previousLabel, now)
	return &cmp, nil
}

// DetectAnomalies screens the user's history for outliers.
func (s *analyticsService) DetectAnomalies(userID string, factor float64) ([]analytics.Anomaly, error) {
	transactions, categories, err := s.snapshot(userID)
	if err != nil {
		return nil, err
	}
	return analytics.DetectAnomalies(transactions, categories, factor), nil
}

// ForecastExpenses projects future monthly expense totals.
func (s *analyticsService) ForecastExpenses(userID string, months int) (*analytics.Forecast, error) {
	transactions, categories, err := s.snapshot(userID)
	if err != nil {
		return nil, err
	}
	fc := analytics.ForecastExpenses(transactions, categories, months)
	return &fc, nil
}

// Suggestions generates spending advice for the month containing now.
func (s *analyticsService) Suggestions(userID string, now time.Time) ([]analytics.Suggestion, error) {
	transactions, categories, err := s.snapshot(userID)
	if err != nil {
		return nil, err
	}
	return analytics.Suggest(transactions, categories, now), nil
}

// BudgetProgress reports current-month spending against budgeted categories.
func (s *analyticsService) BudgetProgress(userID string, now time.Time) ([]analytics.CategoryBudgetProgress, error) {
	transactions, categories, err := s.snapshot(userID)
	if err != nil {
		return nil, err
	}
	return analytics.BudgetProgress(transactions, categories, now), nil
}
