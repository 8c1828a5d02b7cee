package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/logger"
	"ledgerly/internal/models"
	"ledgerly/internal/recurrence"
)

// recurringService materializes due instances of recurring transaction
// series. Meant to be invoked on login or by a scheduler; the generation
// itself is idempotent per day.
type recurringService struct {
	db *gorm.DB
}

// NewRecurringService creates a new RecurringServicer.
func NewRecurringService(db *gorm.DB) RecurringServicer {
	return &recurringService{db: db}
}

// GenerateDueTransactions materializes at most one newly due instance per
// recurring series and persists the batch. Returns the created
// transactions; an empty slice means nothing was due.
func (s *recurringService) GenerateDueTransactions(userID string, now time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	due := recurrence.GenerateDue(transactions, now)
	if len(due) == 0 {
		return []models.Transaction{}, nil
	}

	if err := s.db.Create(&due).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("recurring transactions generated", "user_id", userID, "count", len(due))
	return due, nil
}
